// Package vocabulary stores analysed words and moves word lists in and out of the application.
package vocabulary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/at-ishikawa/silabario/internal/syllable"
)

var (
	ErrEmptyWord       = errors.New("word is empty")
	ErrMultipleWords   = errors.New("only a single word is accepted")
	ErrDuplicateWord   = errors.New("word already exists")
	ErrNotFound        = errors.New("word not found")
	ErrInconsistent    = errors.New("word analysis is inconsistent")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidEncoding = errors.New("word is not valid UTF-8")
)

// Word is an analysed vocabulary entry.
type Word struct {
	Word        string            `yaml:"word" json:"word"`
	Syllables   []string          `yaml:"syllables" json:"syllables"`
	StressIndex int               `yaml:"stress_index" json:"stress_index"`
	Category    syllable.Category `yaml:"category" json:"category"`
	ImageHint   string            `yaml:"image_hint,omitempty" json:"image_hint,omitempty"`
}

// StressedSyllable returns the syllable carrying the stress.
func (w Word) StressedSyllable() string {
	if w.StressIndex < 0 || w.StressIndex >= len(w.Syllables) {
		return ""
	}
	return w.Syllables[w.StressIndex]
}

// UnmarshalJSON also accepts the legacy keys tonic_index and type.
func (w *Word) UnmarshalJSON(data []byte) error {
	var raw struct {
		Word        string   `json:"word"`
		Syllables   []string `json:"syllables"`
		StressIndex *int     `json:"stress_index"`
		TonicIndex  *int     `json:"tonic_index"`
		Category    string   `json:"category"`
		Type        string   `json:"type"`
		ImageHint   string   `json:"image_hint"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*w = Word{
		Word:      raw.Word,
		Syllables: raw.Syllables,
		ImageHint: raw.ImageHint,
	}
	switch {
	case raw.StressIndex != nil:
		w.StressIndex = *raw.StressIndex
	case raw.TonicIndex != nil:
		w.StressIndex = *raw.TonicIndex
	}

	category := raw.Category
	if category == "" {
		category = raw.Type
	}
	if category != "" {
		c, err := syllable.ParseCategory(category)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		}
		w.Category = c
	}
	return nil
}

// Normalize trims surrounding space and composes accents into single code points.
func Normalize(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}

// Key is the case-insensitive identity of a word used for duplicate detection.
func Key(word string) string {
	return cases.Fold().String(Normalize(word))
}

// NewWord normalises raw and runs it through the analysis pipeline.
func NewWord(raw string) (Word, error) {
	if !utf8.ValidString(raw) {
		return Word{}, fmt.Errorf("%w: %q", ErrInvalidEncoding, raw)
	}
	text := Normalize(raw)
	if text == "" {
		return Word{}, ErrEmptyWord
	}
	if strings.ContainsFunc(text, unicode.IsSpace) {
		return Word{}, fmt.Errorf("%w: %q", ErrMultipleWords, text)
	}
	return fromAnalysis(syllable.Analyze(text)), nil
}

func fromAnalysis(a syllable.Analysis) Word {
	return Word{
		Word:        a.Word,
		Syllables:   a.Syllables,
		StressIndex: a.StressIndex,
		Category:    a.Category,
	}
}

// Complete fills in a missing analysis and checks a provided one.
// The category is always recomputed from the syllables and stress index.
func Complete(w Word) (Word, error) {
	hint := w.ImageHint
	if len(w.Syllables) == 0 {
		analysed, err := NewWord(w.Word)
		if err != nil {
			return Word{}, err
		}
		analysed.ImageHint = hint
		return analysed, nil
	}

	if !utf8.ValidString(w.Word) {
		return Word{}, fmt.Errorf("%w: %q", ErrInvalidEncoding, w.Word)
	}
	w.Word = Normalize(w.Word)
	if w.Word == "" {
		return Word{}, ErrEmptyWord
	}
	syllables := make([]string, len(w.Syllables))
	for i, s := range w.Syllables {
		syllables[i] = norm.NFC.String(s)
	}
	w.Syllables = syllables
	if joined := strings.Join(w.Syllables, ""); joined != w.Word {
		return Word{}, fmt.Errorf("%w: syllables %q do not spell %q", ErrInconsistent, joined, w.Word)
	}
	if w.StressIndex < 0 || w.StressIndex >= len(w.Syllables) {
		return Word{}, fmt.Errorf("%w: stress index %d out of range for %q", ErrInconsistent, w.StressIndex, w.Word)
	}

	category := syllable.Classify(w.Syllables, w.StressIndex)
	if w.Category != "" && w.Category != category {
		return Word{}, fmt.Errorf("%w: %q is %s, not %s", ErrInconsistent, w.Word, category, w.Category)
	}
	w.Category = category
	return w, nil
}

// FilterByCategory returns the words in category, keeping their order.
func FilterByCategory(words []Word, category syllable.Category) []Word {
	var filtered []Word
	for _, w := range words {
		if w.Category == category {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// Stats counts words per category.
type Stats struct {
	Total      int
	ByCategory map[syllable.Category]int
}

func CountByCategory(words []Word) Stats {
	stats := Stats{ByCategory: make(map[syllable.Category]int, 3)}
	for _, c := range syllable.Categories() {
		stats.ByCategory[c] = 0
	}
	for _, w := range words {
		stats.Total++
		stats.ByCategory[w.Category]++
	}
	return stats
}
