// Package settings persists player preferences.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRounds = 15
	MinRounds     = 1
	MaxRounds     = 50
)

// Settings are the preferences shown in the settings panel.
type Settings struct {
	PlayerName string `yaml:"player_name" validate:"max=40"`
	Rounds     int    `yaml:"rounds" validate:"min=1,max=50"`
}

// Greeting returns the player name, or a generic one.
func (s Settings) Greeting() string {
	if name := strings.TrimSpace(s.PlayerName); name != "" {
		return name
	}
	return "estudiante"
}

// Store reads and writes Settings in a YAML file.
type Store struct {
	path          string
	defaultRounds int
	validate      *validator.Validate
}

// NewStore creates a Store. defaultRounds is used when the file does not exist.
func NewStore(path string, defaultRounds int) *Store {
	if defaultRounds < MinRounds || defaultRounds > MaxRounds {
		defaultRounds = DefaultRounds
	}
	return &Store{
		path:          path,
		defaultRounds: defaultRounds,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load returns the stored settings, or the defaults if nothing was saved yet.
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{Rounds: s.defaultRounds}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}

	settings := Settings{Rounds: s.defaultRounds}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("yaml.Unmarshal() > %w", err)
	}
	if err := s.validate.Struct(settings); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", s.path, err)
	}
	return settings, nil
}

// Save validates and writes settings.
func (s *Store) Save(settings Settings) error {
	settings.PlayerName = strings.TrimSpace(settings.PlayerName)
	if err := s.validate.Struct(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("yaml.Marshal() > %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(s.path), err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}
