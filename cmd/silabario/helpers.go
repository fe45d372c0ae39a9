package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/at-ishikawa/silabario/internal/config"
	"github.com/at-ishikawa/silabario/internal/settings"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// openRepository loads the configuration and opens the configured word store.
// The returned function must be called to release it.
func openRepository() (*config.Config, vocabulary.Repository, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	repo, closeRepo, err := vocabulary.OpenRepository(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("vocabulary.OpenRepository() > %w", err)
	}
	return cfg, repo, func() { _ = closeRepo() }, nil
}

func newSettingsStore(cfg *config.Config) *settings.Store {
	return settings.NewStore(cfg.Settings.File, cfg.Game.DefaultRounds)
}

// newRand returns a generator seeded with seed, or with a random seed when seed is 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}
