package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

// NewMigrator returns a goose provider for the migration files under dir in fsys.
// Applied versions are recorded in goose_db_version.
func NewMigrator(db *sqlx.DB, fsys fs.FS, dir string) (*goose.Provider, error) {
	migrations, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("fs.Sub(%s) > %w", dir, err)
	}
	provider, err := goose.NewProvider(goose.DialectMySQL, db.DB, migrations)
	if err != nil {
		return nil, fmt.Errorf("goose.NewProvider() > %w", err)
	}
	return provider, nil
}

// Migrate applies every pending migration and returns the ones applied by this call.
func Migrate(ctx context.Context, db *sqlx.DB, fsys fs.FS, dir string) ([]*goose.MigrationResult, error) {
	provider, err := NewMigrator(db, fsys, dir)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	for _, r := range results {
		slog.Default().Info("applied migration",
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.Duration("duration", r.Duration))
	}
	if err != nil {
		return results, fmt.Errorf("provider.Up() > %w", err)
	}
	return results, nil
}
