package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/silabario/internal/database"
	"github.com/at-ishikawa/silabario/internal/datasync"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
	"github.com/at-ishikawa/silabario/schemas"
)

func newDBCommand() *cobra.Command {
	dbCommand := &cobra.Command{
		Use:   "db",
		Short: "Database commands",
	}
	dbCommand.AddCommand(newDBMigrateCommand(), newDBImportCommand())
	return dbCommand
}

func newDBMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			applied, err := database.Migrate(cmd.Context(), db, schemas.Migrations, "migrations")
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
				return nil
			}
			for _, result := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", result.Source.Path)
			}
			return nil
		},
	}
}

func newDBImportCommand() *cobra.Command {
	var opts datasync.ImportOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the YAML word list into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			words, err := datasync.NewExporter(vocabulary.NewYAMLRepository(cfg.Vocabulary.File)).Export(ctx)
			if err != nil {
				return fmt.Errorf("read word list: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			importer := datasync.NewImporter(vocabulary.NewDBRepository(db), cmd.OutOrStdout())
			result, err := importer.Import(ctx, words, opts)
			if err != nil {
				return fmt.Errorf("import words: %w", err)
			}
			printImportSummary(cmd, result, opts)
			return nil
		},
	}
	addImportFlags(cmd, &opts)
	return cmd
}
