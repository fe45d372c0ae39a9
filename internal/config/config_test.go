package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Vocabulary: VocabularyConfig{
			Backend: BackendYAML,
			File:    filepath.Join("data", "words.yml"),
		},
		Settings: SettingsConfig{
			File: filepath.Join("data", "settings.yml"),
		},
		Game: GameConfig{
			DefaultRounds: 15,
			BatchSize:     10,
			CompleteMode:  "input",
		},
		Outputs: OutputsConfig{
			WorksheetDirectory: filepath.Join("outputs", "worksheets"),
		},
		Fetcher: FetcherConfig{
			MaxRetryAttempts: 3,
			TimeoutSeconds:   30,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "silabario",
			Username: "user",
		},
		Server: ServerConfig{
			Port: 8080,
			CORS: CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `vocabulary:
  file: custom/words.yaml
settings:
  file: custom/settings.yml
game:
  default_rounds: 20
  complete_mode: choice
outputs:
  worksheet_directory: custom/worksheets
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Vocabulary.File = "custom/words.yaml"
				cfg.Settings.File = "custom/settings.yml"
				cfg.Game.DefaultRounds = 20
				cfg.Game.CompleteMode = "choice"
				cfg.Outputs.WorksheetDirectory = "custom/worksheets"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `vocabulary:
  file: custom/words.yml
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown keys fall back to defaults",
			configContent: `wrong_key:
  some_value: test
`,
			want: defaultConfig,
		},
		{
			name: "explicit config file path with mysql backend",
			configContent: `vocabulary:
  backend: mysql
database:
  host: db.example.com
  port: 3307
  params:
    charset: utf8mb4
`,
			useExplicitPath: true,
			env:             map[string]string{"SILABARIO_DB_PASSWORD": "secret"},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Vocabulary.Backend = BackendMySQL
				cfg.Database.Host = "db.example.com"
				cfg.Database.Port = 3307
				cfg.Database.Password = "secret"
				cfg.Database.Params = map[string]string{"charset": "utf8mb4"}
				return cfg
			},
		},
		{
			name: "unknown backend",
			configContent: `vocabulary:
  backend: postgres
`,
			useExplicitPath:   true,
			wantErrorContains: []string{"invalid configuration", "backend"},
		},
		{
			name: "rounds out of range",
			configContent: `game:
  default_rounds: 99
`,
			useExplicitPath:   true,
			wantErrorContains: []string{"invalid configuration", "default_rounds"},
		},
		{
			name: "vocabulary file must be yaml",
			configContent: `vocabulary:
  file: words.json
`,
			useExplicitPath:   true,
			wantErrorContains: []string{"vocabulary.file must point to a .yml or .yaml file"},
		},
		{
			name: "missing worksheet template",
			configContent: `templates:
  worksheet_template: /nonexistent/worksheet.md.go.tmpl
`,
			useExplicitPath:   true,
			wantErrorContains: []string{"templates.worksheet_template must be an existing and readable file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "silabario.yml")
			} else {
				configPath = filepath.Join(tempDir, "config.yaml")
				t.Chdir(tempDir)
			}
			require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			if !tt.useExplicitPath {
				configPath = ""
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestConfigLoader_Load_NoConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), got)
}

func TestConfigLoader_Load_WorksheetTemplate(t *testing.T) {
	tempDir := t.TempDir()
	templatePath := filepath.Join(tempDir, "worksheet.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte("# {{ .Title }}"), 0644))

	configPath := filepath.Join(tempDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("templates:\n  worksheet_template: "+templatePath+"\n"), 0644))

	loader, err := NewConfigLoader(configPath)
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, templatePath, got.Templates.WorksheetTemplate)
}
