// Package worksheet lays out printable stress exercises.
package worksheet

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/at-ishikawa/silabario/internal/assets"
	"github.com/at-ishikawa/silabario/internal/exercise"
	"github.com/at-ishikawa/silabario/internal/syllable"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

// Exercise is a kind of section on a worksheet page.
type Exercise string

const (
	ExerciseSyllables Exercise = "syllables"
	ExerciseClassify  Exercise = "classify"
	ExerciseComplete  Exercise = "complete"
	ExerciseArrows    Exercise = "arrows"
	ExerciseSentence  Exercise = "sentence"
)

const (
	MinPages = 1
	MaxPages = 20

	syllableWords = 6
	classifyWords = 6
	completeWords = 6
	arrowWords    = 5
	wordsPerPage  = syllableWords + classifyWords + completeWords + arrowWords
	classifyRows  = 4
)

var ErrNoExercises = errors.New("no exercises selected")

// Exercises returns every exercise in page order.
func Exercises() []Exercise {
	return []Exercise{ExerciseSyllables, ExerciseClassify, ExerciseComplete, ExerciseArrows, ExerciseSentence}
}

func ParseExercise(value string) (Exercise, error) {
	e := Exercise(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Exercises() {
		if known == e {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown exercise %q", value)
}

func (e Exercise) title() string {
	switch e {
	case ExerciseSyllables:
		return "Separa en sílabas y rodea la tónica"
	case ExerciseClassify:
		return "Clasifica las siguientes palabras"
	case ExerciseComplete:
		return "Completa con la sílaba tónica y clasifica"
	case ExerciseArrows:
		return "Une cada palabra con su tipo"
	case ExerciseSentence:
		return "Escribe una oración con una palabra esdrújula"
	}
	return string(e)
}

// Options controls the layout.
type Options struct {
	PageCount  int
	Exercises  []Exercise
	PlayerName string
	Date       time.Time
	AnswerKey  bool
}

// Build picks fresh random words for each page and lays out the selected exercises.
// Exercises are numbered in page order regardless of the order in opts.
func Build(words []vocabulary.Word, opts Options, rng *rand.Rand) (assets.WorksheetTemplate, error) {
	if len(words) == 0 {
		return assets.WorksheetTemplate{}, exercise.ErrNoWords
	}
	if opts.PageCount < MinPages || opts.PageCount > MaxPages {
		return assets.WorksheetTemplate{}, fmt.Errorf("page count must be between %d and %d, got %d", MinPages, MaxPages, opts.PageCount)
	}
	selected, err := selectExercises(opts.Exercises)
	if err != nil {
		return assets.WorksheetTemplate{}, err
	}

	result := assets.WorksheetTemplate{
		Title:      "Ficha de Lengua",
		Subtitle:   "Agudas, Llanas y Esdrújulas",
		PlayerName: strings.TrimSpace(opts.PlayerName),
		Date:       FormatDate(opts.Date),
		AnswerKey:  opts.AnswerKey,
	}
	for i := range opts.PageCount {
		pageWords := exercise.PickWords(words, wordsPerPage, rng)
		result.Pages = append(result.Pages, buildPage(i+1, opts.PageCount, pageWords, selected))
	}
	return result, nil
}

func selectExercises(requested []Exercise) ([]Exercise, error) {
	if len(requested) == 0 {
		return Exercises(), nil
	}
	wanted := make(map[Exercise]bool, len(requested))
	for _, e := range requested {
		if _, err := ParseExercise(string(e)); err != nil {
			return nil, err
		}
		wanted[e] = true
	}
	var selected []Exercise
	for _, e := range Exercises() {
		if wanted[e] {
			selected = append(selected, e)
		}
	}
	if len(selected) == 0 {
		return nil, ErrNoExercises
	}
	return selected, nil
}

// slice returns words[from:to] clipped to the available words.
func slice(words []vocabulary.Word, from, to int) []vocabulary.Word {
	if from >= len(words) {
		return nil
	}
	return words[from:min(to, len(words))]
}

func buildPage(number, total int, words []vocabulary.Word, selected []Exercise) assets.WorksheetPage {
	page := assets.WorksheetPage{Number: number, Total: total}
	used := make(map[string]vocabulary.Word)

	for i, e := range selected {
		section := assets.WorksheetSection{
			Number: i + 1,
			Kind:   string(e),
			Title:  e.title(),
		}
		var sectionWords []vocabulary.Word
		switch e {
		case ExerciseSyllables:
			sectionWords = slice(words, 0, syllableWords)
			section.Items = wordTexts(sectionWords)
		case ExerciseClassify:
			sectionWords = slice(words, syllableWords, syllableWords+classifyWords)
			if len(sectionWords) == 0 {
				sectionWords = slice(words, 0, syllableWords)
			}
			section.Items = wordTexts(sectionWords)
			section.Columns = categoryLabels(true)
			section.Rows = classifyRows
		case ExerciseComplete:
			from := syllableWords + classifyWords
			sectionWords = slice(words, from, from+completeWords)
			for _, w := range sectionWords {
				section.Items = append(section.Items, MaskStressed(w))
			}
		case ExerciseArrows:
			from := syllableWords + classifyWords + completeWords
			sectionWords = slice(words, from, from+arrowWords)
			section.Items = wordTexts(sectionWords)
			section.Columns = categoryLabels(false)
		}
		for _, w := range sectionWords {
			used[w.Word] = w
		}
		if e != ExerciseSentence && len(section.Items) == 0 {
			continue
		}
		page.Sections = append(page.Sections, section)
	}

	for i := range page.Sections {
		page.Sections[i].Number = i + 1
	}
	for _, w := range words {
		if _, ok := used[w.Word]; !ok {
			continue
		}
		page.Answers = append(page.Answers, assets.WorksheetAnswer{
			Word:      w.Word,
			Syllables: w.Syllables,
			Stressed:  w.StressedSyllable(),
			Category:  w.Category.Label(),
		})
	}
	return page
}

// MaskStressed spells the word with the stressed syllable replaced by a blank.
func MaskStressed(w vocabulary.Word) string {
	syllables := make([]string, len(w.Syllables))
	copy(syllables, w.Syllables)
	if w.StressIndex >= 0 && w.StressIndex < len(syllables) {
		syllables[w.StressIndex] = exercise.Blank
	}
	return strings.Join(syllables, "")
}

func wordTexts(words []vocabulary.Word) []string {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Word
	}
	return texts
}

func categoryLabels(plural bool) []string {
	var labels []string
	for _, c := range syllable.Categories() {
		label := c.Label()
		if plural {
			label += "s"
		}
		labels = append(labels, label)
	}
	return labels
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate writes t the way Spanish locales print long dates, e.g. "5 de marzo de 2025".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
