// Package config loads the silabario configuration file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	BackendYAML  = "yaml"
	BackendMySQL = "mysql"
)

type Config struct {
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Settings   SettingsConfig   `mapstructure:"settings"`
	Game       GameConfig       `mapstructure:"game"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
	Outputs    OutputsConfig    `mapstructure:"outputs"`
	Fetcher    FetcherConfig    `mapstructure:"fetcher"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Server     ServerConfig     `mapstructure:"server"`
}

type VocabularyConfig struct {
	Backend string `mapstructure:"backend" validate:"oneof=yaml mysql"`
	File    string `mapstructure:"file" validate:"required,yamlpath"`
}

type SettingsConfig struct {
	File string `mapstructure:"file" validate:"required,yamlpath"`
}

type GameConfig struct {
	DefaultRounds int    `mapstructure:"default_rounds" validate:"min=1,max=50"`
	BatchSize     int    `mapstructure:"batch_size" validate:"min=1"`
	CompleteMode  string `mapstructure:"complete_mode" validate:"oneof=input choice"`
}

type TemplatesConfig struct {
	WorksheetTemplate string `mapstructure:"worksheet_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	WorksheetDirectory string `mapstructure:"worksheet_directory" validate:"required"`
}

type FetcherConfig struct {
	MaxRetryAttempts uint `mapstructure:"max_retry_attempts" validate:"max=10"`
	TimeoutSeconds   int  `mapstructure:"timeout_seconds" validate:"min=1"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/silabario")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("vocabulary.backend", BackendYAML)
	v.SetDefault("vocabulary.file", filepath.Join("data", "words.yml"))
	v.SetDefault("settings.file", filepath.Join("data", "settings.yml"))
	v.SetDefault("game.default_rounds", 15)
	v.SetDefault("game.batch_size", 10)
	v.SetDefault("game.complete_mode", "input")
	// Template is optional - if not specified, the embedded worksheet template is used
	v.SetDefault("templates.worksheet_template", "")
	v.SetDefault("outputs.worksheet_directory", filepath.Join("outputs", "worksheets"))
	v.SetDefault("fetcher.max_retry_attempts", 3)
	v.SetDefault("fetcher.timeout_seconds", 30)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "silabario")
	v.SetDefault("database.username", "user")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})

	// The database password is only read from the environment
	if err := v.BindEnv("database.password", "SILABARIO_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind SILABARIO_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
