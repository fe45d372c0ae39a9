package vocabulary

import (
	"fmt"

	"github.com/at-ishikawa/silabario/internal/config"
	"github.com/at-ishikawa/silabario/internal/database"
)

// OpenRepository returns the repository selected by cfg.Vocabulary.Backend and a function releasing it.
func OpenRepository(cfg *config.Config) (Repository, func() error, error) {
	switch cfg.Vocabulary.Backend {
	case config.BackendMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open() > %w", err)
		}
		return NewDBRepository(db), db.Close, nil
	case config.BackendYAML, "":
		return NewYAMLRepository(cfg.Vocabulary.File), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown vocabulary backend %q", cfg.Vocabulary.Backend)
	}
}
