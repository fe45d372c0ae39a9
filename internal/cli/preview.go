package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/silabario/internal/syllable"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

func categoryColor(c syllable.Category) *color.Color {
	switch c {
	case syllable.CategoryAguda:
		return color.New(color.FgBlue, color.Bold)
	case syllable.CategoryLlana:
		return color.New(color.FgGreen, color.Bold)
	case syllable.CategoryEsdrujula:
		return color.New(color.FgRed, color.Bold)
	}
	return color.New(color.Bold)
}

// FormatSyllables joins the syllables with dashes and upper-cases the stressed one.
func FormatSyllables(word vocabulary.Word) string {
	parts := make([]string, len(word.Syllables))
	for i, s := range word.Syllables {
		if i == word.StressIndex {
			parts[i] = categoryColor(word.Category).Sprint(strings.ToUpper(s))
			continue
		}
		parts[i] = s
	}
	return strings.Join(parts, " - ")
}

// PrintAnalysis writes one line with the syllables, stressed syllable and category of word.
func PrintAnalysis(w io.Writer, word vocabulary.Word) {
	if len(word.Syllables) == 0 {
		fmt.Fprintf(w, "%s: no se puede analizar\n", word.Word)
		return
	}
	fmt.Fprintf(w, "%s  →  %s  (tónica: %s, %s)\n",
		color.New(color.Bold).Sprint(word.Word),
		FormatSyllables(word),
		word.StressedSyllable(),
		categoryColor(word.Category).Sprint(word.Category.Label()),
	)
}

// RunAnalyzePreview prints the analysis of words, one per line.
func RunAnalyzePreview(w io.Writer, words []vocabulary.Word) {
	for _, word := range words {
		PrintAnalysis(w, word)
	}
}

// RunStats prints how many words belong to each category.
func RunStats(w io.Writer, stats vocabulary.Stats) {
	fmt.Fprintf(w, "%-12s %6s %7s\n", "Tipo", "Total", "%")
	for _, c := range syllable.Categories() {
		count := stats.ByCategory[c]
		percent := 0.0
		if stats.Total > 0 {
			percent = float64(count) * 100 / float64(stats.Total)
		}
		fmt.Fprintf(w, "%-12s %6d %6.1f%%\n", c.Label(), count, percent)
	}
	fmt.Fprintf(w, "%-12s %6d\n", "Todas", stats.Total)
}
