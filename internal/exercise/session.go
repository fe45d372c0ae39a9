package exercise

import (
	"fmt"
	"math/rand/v2"

	"github.com/at-ishikawa/silabario/internal/settings"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

// Round is one exercise of a random session.
type Round struct {
	Number int
	Kind   Kind
	Word   vocabulary.Word
}

// NewRandomSession plans rounds exercises, each a random game over a random word.
func NewRandomSession(words []vocabulary.Word, rounds int, rng *rand.Rand) ([]Round, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if rounds < settings.MinRounds || rounds > settings.MaxRounds {
		return nil, fmt.Errorf("rounds must be between %d and %d, got %d", settings.MinRounds, settings.MaxRounds, rounds)
	}

	kinds := Kinds()
	plan := make([]Round, rounds)
	for i := range plan {
		plan[i] = Round{
			Number: i + 1,
			Kind:   kinds[rng.IntN(len(kinds))],
			Word:   words[rng.IntN(len(words))],
		}
	}
	return plan, nil
}
