// Package syllable splits Spanish words into syllables, locates the stressed
// syllable and classifies words by stress position.
package syllable

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	vowels = setOf("aeiouáéíóúüAEIOUÁÉÍÓÚÜ")
	// Accented i and u count as strong: a written accent on a weak vowel breaks the diphthong.
	strongVowels   = setOf("aeoAEOáéíóúÁÉÍÓÚ")
	accentedVowels = setOf("áéíóúÁÉÍÓÚ")
	// Word endings that move the default stress to the penultimate syllable.
	penultimateEndings = setOf("aeiouáéíóúns")

	inseparableClusters = map[string]struct{}{
		"bl": {}, "cl": {}, "fl": {}, "gl": {}, "pl": {},
		"br": {}, "cr": {}, "dr": {}, "fr": {}, "gr": {}, "pr": {}, "tr": {},
		"ch": {}, "ll": {}, "rr": {},
	}
)

func setOf(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, utf8.RuneCountInString(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

func contains(set map[rune]struct{}, r rune) bool {
	_, ok := set[r]
	return ok
}

func isVowel(r rune) bool {
	return contains(vowels, r)
}

func isStrongVowel(r rune) bool {
	return contains(strongVowels, r)
}

func isAccentedVowel(r rune) bool {
	return contains(accentedVowels, r)
}

// isInseparable reports whether the two consonants form an onset that is never split.
func isInseparable(first, second rune) bool {
	_, ok := inseparableClusters[string([]rune{unicode.ToLower(first), unicode.ToLower(second)})]
	return ok
}

// isCodaNS reports whether the pair is "ns", which closes a syllable as in "trans-" or "ins-".
func isCodaNS(first, second rune) bool {
	return unicode.ToLower(first) == 'n' && unicode.ToLower(second) == 's'
}

// Syllabify splits word into syllables. Joining the result reproduces word exactly.
// An empty word yields an empty slice.
func Syllabify(word string) []string {
	// runes[k] starts at byte offsets[k]; invalid bytes decode as one RuneError each.
	runes := make([]rune, 0, len(word))
	offsets := make([]int, 0, len(word)+1)
	for pos := 0; pos < len(word); {
		r, size := utf8.DecodeRuneInString(word[pos:])
		runes = append(runes, r)
		offsets = append(offsets, pos)
		pos += size
	}
	offsets = append(offsets, len(word))

	syllables := make([]string, 0, len(runes)/2+1)
	start := 0

	at := func(i int) (rune, bool) {
		if i >= len(runes) {
			return 0, false
		}
		return runes[i], true
	}
	// closeSyllable ends the current syllable before rune end.
	closeSyllable := func(end int) {
		syllables = append(syllables, word[offsets[start]:offsets[end]])
		start = end
	}

	for i := 0; i < len(runes); i++ {
		char := runes[i]
		if !isVowel(char) {
			continue
		}

		next, hasNext := at(i + 1)
		afterNext, hasAfterNext := at(i + 2)
		switch {
		case hasNext && !isVowel(next) && hasAfterNext && isVowel(afterNext):
			// V-C-V: the consonant opens the next syllable.
			closeSyllable(i + 1)
		case hasNext && !isVowel(next) && hasAfterNext && !isVowel(afterNext):
			third, hasThird := at(i + 3)
			switch {
			case isCodaNS(next, afterNext) && hasThird && !isVowel(third):
				closeSyllable(i + 3)
				i += 2
			case isInseparable(next, afterNext):
				closeSyllable(i + 1)
			default:
				closeSyllable(i + 2)
				i++
			}
		case hasNext && isVowel(next):
			if isStrongVowel(char) && isStrongVowel(next) {
				// hiatus
				closeSyllable(i + 1)
			}
		}
	}

	if start < len(runes) {
		closeSyllable(len(runes))
	}
	return syllables
}

// LocateStress returns the index of the stressed syllable.
//
// The first syllable carrying a written accent wins. Without one, words ending
// in a vowel, n or s are stressed on the penultimate syllable and every other
// word on the last one. An empty slice has no valid index and yields 0.
func LocateStress(syllables []string) int {
	for i, s := range syllables {
		if strings.ContainsFunc(s, isAccentedVowel) {
			return i
		}
	}
	if len(syllables) <= 1 {
		return 0
	}

	last, _ := utf8.DecodeLastRuneInString(syllables[len(syllables)-1])
	if contains(penultimateEndings, unicode.ToLower(last)) {
		return len(syllables) - 2
	}
	return len(syllables) - 1
}

// Classify derives the category from the distance between the stressed
// syllable and the end of the word. It panics when stressIndex is out of range.
func Classify(syllables []string, stressIndex int) Category {
	if stressIndex < 0 || stressIndex >= len(syllables) {
		panic(fmt.Sprintf("syllable.Classify: stress index %d out of range [0, %d)", stressIndex, len(syllables)))
	}

	switch len(syllables) - 1 - stressIndex {
	case 0:
		return CategoryAguda
	case 1:
		return CategoryLlana
	default:
		return CategoryEsdrujula
	}
}

// Analysis is the result of running a word through the whole pipeline.
type Analysis struct {
	Word        string
	Syllables   []string
	StressIndex int
	Category    Category
}

// StressedSyllable returns the syllable at StressIndex, or "" for an empty analysis.
func (a Analysis) StressedSyllable() string {
	if a.StressIndex < 0 || a.StressIndex >= len(a.Syllables) {
		return ""
	}
	return a.Syllables[a.StressIndex]
}

// Analyze syllabifies word, locates its stress and classifies it.
// An empty word produces an Analysis without syllables or category.
func Analyze(word string) Analysis {
	syllables := Syllabify(word)
	if len(syllables) == 0 {
		return Analysis{Word: word, Syllables: syllables}
	}

	stressIndex := LocateStress(syllables)
	return Analysis{
		Word:        word,
		Syllables:   syllables,
		StressIndex: stressIndex,
		Category:    Classify(syllables, stressIndex),
	}
}
