package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/silabario/internal/cli"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

func newAnalyzeCommand() *cobra.Command {
	format := FormatText

	cmd := &cobra.Command{
		Use:   "analyze <word>...",
		Short: "Split words into syllables, find the stressed one and classify them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words := make([]vocabulary.Word, 0, len(args))
			for _, arg := range args {
				w, err := vocabulary.NewWord(arg)
				if err != nil {
					return fmt.Errorf("vocabulary.NewWord(%q) > %w", arg, err)
				}
				words = append(words, w)
			}

			if format == FormatJSON {
				return vocabulary.ExportJSON(cmd.OutOrStdout(), words)
			}
			cli.RunAnalyzePreview(cmd.OutOrStdout(), words)
			return nil
		},
	}
	cmd.Flags().Var(&format, "format", "Output format. Options: text, json")
	return cmd
}
