package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/silabario/internal/worksheet"
)

func newWorksheetCommand() *cobra.Command {
	var (
		pageCount   int
		exercises   []string
		answerKey   bool
		generatePDF bool
		playerName  string
		outputName  string
		seed        uint64
	)

	cmd := &cobra.Command{
		Use:   "worksheet",
		Short: "Generate a printable worksheet from the stored words",
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := make([]worksheet.Exercise, 0, len(exercises))
			for _, e := range exercises {
				exercise, err := worksheet.ParseExercise(e)
				if err != nil {
					return err
				}
				selected = append(selected, exercise)
			}

			cfg, repo, closeRepo, err := openRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			if !cmd.Flags().Changed("name") {
				prefs, err := newSettingsStore(cfg).Load()
				if err != nil {
					return fmt.Errorf("load settings: %w", err)
				}
				playerName = prefs.PlayerName
			}

			words, err := repo.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("repo.FindAll() > %w", err)
			}

			now := time.Now()
			data, err := worksheet.Build(words, worksheet.Options{
				PageCount:  pageCount,
				Exercises:  selected,
				PlayerName: playerName,
				Date:       now,
				AnswerKey:  answerKey,
			}, newRand(seed))
			if err != nil {
				return fmt.Errorf("worksheet.Build() > %w", err)
			}

			if outputName == "" {
				outputName = "ficha-" + now.Format("20060102-150405")
			}
			writer := worksheet.NewWriter(cfg.Outputs.WorksheetDirectory, cfg.Templates.WorksheetTemplate)
			mdPath, pdfPath, err := writer.Write(outputName, data, generatePDF)
			if err != nil {
				return fmt.Errorf("writer.Write() > %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Worksheet written to %s\n", mdPath)
			if pdfPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pageCount, "pages", 1, fmt.Sprintf("Number of pages (%d-%d)", worksheet.MinPages, worksheet.MaxPages))
	cmd.Flags().StringSliceVar(&exercises, "exercises", nil, "Exercises to include (syllables, classify, complete, arrows, sentence), all by default")
	cmd.Flags().BoolVar(&answerKey, "answer-key", false, "Append the solutions to each page")
	cmd.Flags().BoolVar(&generatePDF, "pdf", false, "Also generate a PDF file")
	cmd.Flags().StringVar(&playerName, "name", "", "Student name printed on the worksheet, defaults to the saved player name")
	cmd.Flags().StringVar(&outputName, "output", "", "Output file name without extension")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed, 0 picks one")
	return cmd
}
