package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/silabario/internal/cli"
	"github.com/at-ishikawa/silabario/internal/datasync"
	"github.com/at-ishikawa/silabario/internal/syllable"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

func newWordsCommand() *cobra.Command {
	wordsCommand := &cobra.Command{
		Use:   "words",
		Short: "Manage the stored vocabulary",
	}

	wordsCommand.AddCommand(
		newWordsListCommand(),
		newWordsAddCommand(),
		newWordsRemoveCommand(),
		newWordsImportCommand(),
		newWordsExportCommand(),
		newWordsFetchCommand(),
		newWordsStatsCommand(),
	)
	return wordsCommand
}

func newWordsListCommand() *cobra.Command {
	var category CategoryFlag
	format := FormatText

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored words",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repo, closeRepo, err := openRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			words, err := repo.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("repo.FindAll() > %w", err)
			}
			if category != "" {
				words = vocabulary.FilterByCategory(words, syllable.Category(category))
			}

			if format == FormatJSON {
				return vocabulary.ExportJSON(cmd.OutOrStdout(), words)
			}
			if len(words) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No hay palabras guardadas.")
				return nil
			}
			cli.RunAnalyzePreview(cmd.OutOrStdout(), words)
			return nil
		},
	}
	cmd.Flags().Var(&category, "category", "Only list one category. Options: aguda, llana, esdrujula")
	cmd.Flags().Var(&format, "format", "Output format. Options: text, json")
	return cmd
}

func newWordsAddCommand() *cobra.Command {
	var imageHint string

	cmd := &cobra.Command{
		Use:   "add <word>...",
		Short: "Analyse and store words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repo, closeRepo, err := openRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			for _, arg := range args {
				w, err := vocabulary.NewWord(arg)
				if err != nil {
					return fmt.Errorf("vocabulary.NewWord(%q) > %w", arg, err)
				}
				w.ImageHint = imageHint
				if err := repo.Create(cmd.Context(), &w); err != nil {
					return fmt.Errorf("repo.Create(%q) > %w", w.Word, err)
				}
				cli.PrintAnalysis(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&imageHint, "hint", "", "Emoji or short hint shown with the word")
	return cmd
}

func newWordsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <word>",
		Short: "Remove a stored word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repo, closeRepo, err := openRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			if err := repo.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("repo.Delete(%q) > %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Eliminada: %s\n", vocabulary.Normalize(args[0]))
			return nil
		},
	}
}

func addImportFlags(cmd *cobra.Command, opts *datasync.ImportOptions) {
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview changes without modifying the store")
	cmd.Flags().BoolVar(&opts.UpdateExisting, "update-existing", false, "Update existing words with new data")
}

func printImportSummary(cmd *cobra.Command, result *datasync.ImportResult, opts datasync.ImportOptions) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nImport Summary:")
	if opts.DryRun {
		fmt.Fprintln(out, "  (dry-run mode, no changes made)")
	}
	fmt.Fprintf(out, "  Words: %d new, %d skipped, %d updated\n", result.New, result.Skipped, result.Updated)
}

func newWordsImportCommand() *cobra.Command {
	var opts datasync.ImportOptions

	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a JSON word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open() > %w", err)
			}
			defer func() {
				_ = file.Close()
			}()

			words, err := vocabulary.ImportJSON(file)
			if err != nil {
				return fmt.Errorf("vocabulary.ImportJSON(%s) > %w", args[0], err)
			}

			_, repo, closeRepo, err := openRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			result, err := datasync.NewImporter(repo, cmd.OutOrStdout()).Import(cmd.Context(), words, opts)
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

func newWordsExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.json]",
		Short: "Export stored words as JSON, to stdout when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repo, closeRepo, err := openRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			words, err := datasync.NewExporter(repo).Export(cmd.Context())
			if err != nil {
				return fmt.Errorf("export words: %w", err)
			}
			if len(args) == 0 {
				return vocabulary.ExportJSON(cmd.OutOrStdout(), words)
			}

			file, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("os.Create() > %w", err)
			}
			if err := vocabulary.ExportJSON(file, words); err != nil {
				_ = file.Close()
				return fmt.Errorf("vocabulary.ExportJSON() > %w", err)
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("file.Close() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s\n", len(words), args[0])
			return nil
		},
	}
}

func newWordsFetchCommand() *cobra.Command {
	var opts datasync.ImportOptions

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Download a JSON word list and import it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, repo, closeRepo, err := openRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			fetcher := vocabulary.NewFetcher(time.Duration(cfg.Fetcher.TimeoutSeconds)*time.Second, cfg.Fetcher.MaxRetryAttempts)
			defer func() {
				_ = fetcher.Close()
			}()

			words, err := fetcher.Fetch(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("fetcher.Fetch(%s) > %w", args[0], err)
			}

			result, err := datasync.NewImporter(repo, cmd.OutOrStdout()).Import(cmd.Context(), words, opts)
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

func newWordsStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count stored words per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repo, closeRepo, err := openRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			words, err := repo.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("repo.FindAll() > %w", err)
			}
			cli.RunStats(cmd.OutOrStdout(), vocabulary.CountByCategory(words))
			return nil
		},
	}
}
