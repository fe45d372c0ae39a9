// Package exercise implements the rules of the stress games independently of any user interface.
package exercise

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

// Kind identifies a game.
type Kind string

const (
	KindDetective  Kind = "detective"
	KindClassifier Kind = "classifier"
	KindComplete   Kind = "complete"
	KindLab        Kind = "lab"
)

var ErrNoWords = errors.New("no words available")

// Kinds returns every game in menu order.
func Kinds() []Kind {
	return []Kind{KindDetective, KindClassifier, KindComplete, KindLab}
}

// ParseKind parses a game name.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	for _, k := range Kinds() {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown game %q", value)
}

// Title is the heading shown when a game starts.
func (k Kind) Title() string {
	switch k {
	case KindDetective:
		return "Detective de sílabas"
	case KindClassifier:
		return "Clasificador"
	case KindComplete:
		return "Completa la palabra"
	case KindLab:
		return "Laboratorio de sílabas"
	}
	return string(k)
}

// PickWords returns up to n words in random order without repeating any.
func PickWords(words []vocabulary.Word, n int, rng *rand.Rand) []vocabulary.Word {
	picked := make([]vocabulary.Word, len(words))
	copy(picked, words)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if n < len(picked) {
		picked = picked[:n]
	}
	return picked
}

// Score counts answers across a game.
type Score struct {
	Correct int
	Wrong   int
}

func (s *Score) Record(correct bool) {
	if correct {
		s.Correct++
		return
	}
	s.Wrong++
}
