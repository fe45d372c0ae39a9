package exercise

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/at-ishikawa/silabario/internal/syllable"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

// Detective asks for the position of the stressed syllable.
type Detective struct {
	Word vocabulary.Word
}

func NewDetective(word vocabulary.Word) *Detective {
	return &Detective{Word: word}
}

// Check reports whether index is the stressed syllable.
func (d *Detective) Check(index int) bool {
	return index == d.Word.StressIndex
}

// Classifier asks for the category of a word.
type Classifier struct {
	Word vocabulary.Word
}

func NewClassifier(word vocabulary.Word) *Classifier {
	return &Classifier{Word: word}
}

func (c *Classifier) Check(category syllable.Category) bool {
	return category == c.Word.Category
}

// Mode is how the stressed syllable is answered in Complete.
type Mode string

const (
	ModeInput  Mode = "input"
	ModeChoice Mode = "choice"
)

// Stage is the step a Complete exercise is waiting for.
type Stage int

const (
	StageTonic Stage = iota
	StageClassify
	StageDone
)

const (
	// MaxTypedAttempts wrong typed answers switch Complete to choice mode.
	MaxTypedAttempts = 3
	distractorCount  = 2
	// Blank replaces the stressed syllable in masked words.
	Blank = "......."
)

// Complete asks for the missing stressed syllable and then for the category.
type Complete struct {
	Word     vocabulary.Word
	options  []string
	mode     Mode
	attempts int
	stage    Stage
}

// NewComplete prepares the choices for word. Distractors are syllables taken
// from pool; no two options differ only in case.
func NewComplete(word vocabulary.Word, pool []vocabulary.Word, mode Mode, rng *rand.Rand) *Complete {
	correct := word.StressedSyllable()

	seen := map[string]struct{}{strings.ToLower(correct): {}}
	var candidates []string
	for _, w := range pool {
		for _, s := range w.Syllables {
			key := strings.ToLower(s)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			candidates = append(candidates, s)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > distractorCount {
		candidates = candidates[:distractorCount]
	}

	options := append([]string{correct}, candidates...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	if mode != ModeChoice {
		mode = ModeInput
	}
	return &Complete{
		Word:    word,
		options: options,
		mode:    mode,
	}
}

func (c *Complete) Options() []string {
	return c.options
}

func (c *Complete) Mode() Mode {
	return c.mode
}

func (c *Complete) Stage() Stage {
	return c.stage
}

// Attempts is the number of wrong typed answers so far.
func (c *Complete) Attempts() int {
	return c.attempts
}

// Masked returns the syllables with the stressed one replaced by Blank.
func (c *Complete) Masked() []string {
	masked := make([]string, len(c.Word.Syllables))
	copy(masked, c.Word.Syllables)
	if c.Word.StressIndex >= 0 && c.Word.StressIndex < len(masked) {
		masked[c.Word.StressIndex] = Blank
	}
	return masked
}

// AnswerTonic checks a typed or chosen syllable, ignoring case and surrounding space.
func (c *Complete) AnswerTonic(answer string) (bool, error) {
	if c.stage != StageTonic {
		return false, fmt.Errorf("stressed syllable already answered")
	}
	answer = strings.TrimSpace(answer)
	if strings.EqualFold(answer, c.Word.StressedSyllable()) {
		c.stage = StageClassify
		return true, nil
	}
	if c.mode == ModeInput {
		c.attempts++
		if c.attempts >= MaxTypedAttempts {
			c.mode = ModeChoice
		}
	}
	return false, nil
}

// AnswerCategory checks the category once the stressed syllable was found.
func (c *Complete) AnswerCategory(category syllable.Category) (bool, error) {
	if c.stage != StageClassify {
		return false, fmt.Errorf("category is not being asked")
	}
	if category != c.Word.Category {
		return false, nil
	}
	c.stage = StageDone
	return true, nil
}

// Lab asks to rebuild a word from its shuffled syllables.
type Lab struct {
	Word     vocabulary.Word
	shuffled []string
}

const maxShuffles = 5

// NewLab shuffles the syllables, avoiding the original order when another order exists.
func NewLab(word vocabulary.Word, rng *rand.Rand) *Lab {
	shuffled := make([]string, len(word.Syllables))
	copy(shuffled, word.Syllables)
	for range maxShuffles {
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if !slices.Equal(shuffled, word.Syllables) {
			break
		}
	}
	return &Lab{Word: word, shuffled: shuffled}
}

func (l *Lab) Shuffled() []string {
	return l.shuffled
}

// Target is the lower-cased word reduced to Spanish letters.
func (l *Lab) Target() string {
	return spanishLetters(strings.ToLower(l.Word.Word))
}

// Check rebuilds the word from positions in Shuffled and compares it with Target.
// order must use every position exactly once.
func (l *Lab) Check(order []int) (bool, error) {
	if len(order) != len(l.shuffled) {
		return false, fmt.Errorf("expected %d syllables, got %d", len(l.shuffled), len(order))
	}
	used := make([]bool, len(l.shuffled))
	var b strings.Builder
	for _, i := range order {
		if i < 0 || i >= len(l.shuffled) {
			return false, fmt.Errorf("syllable %d does not exist", i+1)
		}
		if used[i] {
			return false, fmt.Errorf("syllable %d used twice", i+1)
		}
		used[i] = true
		b.WriteString(l.shuffled[i])
	}
	return strings.ToLower(b.String()) == l.Target(), nil
}

func spanishLetters(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || strings.ContainsRune("áéíóúüñ", r) {
			return r
		}
		return -1
	}, s)
}
