package exercise

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/silabario/internal/syllable"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func words(t *testing.T, raws ...string) []vocabulary.Word {
	t.Helper()
	var result []vocabulary.Word
	for _, raw := range raws {
		w, err := vocabulary.NewWord(raw)
		require.NoError(t, err)
		result = append(result, w)
	}
	return result
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(" " + string(k) + " ")
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.NotEmpty(t, k.Title())
	}
	_, err := ParseKind("memory")
	assert.ErrorContains(t, err, "unknown game")
}

func TestPickWords(t *testing.T) {
	all := words(t, "casa", "café", "árbol", "pájaro", "papel")

	picked := PickWords(all, 3, newRand())
	require.Len(t, picked, 3)
	seen := map[string]bool{}
	for _, w := range picked {
		assert.False(t, seen[w.Word], "repeated %s", w.Word)
		seen[w.Word] = true
	}

	assert.Len(t, PickWords(all, 10, newRand()), 5)
	assert.Empty(t, PickWords(nil, 10, newRand()))
	assert.Equal(t, "casa", all[0].Word, "input order is kept")
}

func TestScore(t *testing.T) {
	var s Score
	s.Record(true)
	s.Record(false)
	s.Record(true)
	assert.Equal(t, Score{Correct: 2, Wrong: 1}, s)
}

func TestDetective(t *testing.T) {
	d := NewDetective(words(t, "murciélago")[0])
	assert.False(t, d.Check(0))
	assert.True(t, d.Check(1))
}

func TestClassifier(t *testing.T) {
	c := NewClassifier(words(t, "café")[0])
	assert.False(t, c.Check(syllable.CategoryLlana))
	assert.True(t, c.Check(syllable.CategoryAguda))
}

func TestComplete_Options(t *testing.T) {
	pool := words(t, "casa", "pelota", "café", "árbol")
	c := NewComplete(pool[1], pool, ModeChoice, newRand())

	options := c.Options()
	require.Len(t, options, 3)
	assert.Contains(t, options, "lo")
	assert.Len(t, uniq(options), 3)

	single := words(t, "sol")
	c = NewComplete(single[0], single, ModeChoice, newRand())
	assert.Equal(t, []string{"sol"}, c.Options())
}

func TestComplete_OptionsIgnoreCase(t *testing.T) {
	word := words(t, "pelota")[0]
	pool := words(t, "Lola", "lobo", "Casa", "casa", "CASA")

	for seed := range uint64(20) {
		c := NewComplete(word, pool, ModeChoice, rand.New(rand.NewPCG(seed, seed)))

		seen := map[string]int{}
		for _, o := range c.Options() {
			seen[strings.ToLower(o)]++
		}
		assert.Len(t, seen, len(c.Options()), "options %q differ only in case", c.Options())
		assert.Equal(t, 1, seen["lo"])
		assert.Contains(t, c.Options(), "lo")
	}
}

func TestComplete_Masked(t *testing.T) {
	c := NewComplete(words(t, "pelota")[0], nil, ModeInput, newRand())
	assert.Equal(t, []string{"pe", Blank, "ta"}, c.Masked())
}

func TestComplete_Flow(t *testing.T) {
	w := words(t, "pájaro")[0]
	c := NewComplete(w, []vocabulary.Word{w}, ModeInput, newRand())
	assert.Equal(t, ModeInput, c.Mode())
	assert.Equal(t, StageTonic, c.Stage())

	_, err := c.AnswerCategory(syllable.CategoryEsdrujula)
	assert.Error(t, err)

	for i := 1; i <= MaxTypedAttempts; i++ {
		ok, err := c.AnswerTonic("ja")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, i, c.Attempts())
	}
	assert.Equal(t, ModeChoice, c.Mode())

	ok, err := c.AnswerTonic("ro")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, MaxTypedAttempts, c.Attempts(), "choice answers are not counted")

	ok, err = c.AnswerTonic("  PÁ ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StageClassify, c.Stage())

	_, err = c.AnswerTonic("pá")
	assert.Error(t, err)

	ok, err = c.AnswerCategory(syllable.CategoryLlana)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = c.AnswerCategory(syllable.CategoryEsdrujula)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StageDone, c.Stage())
}

func TestLab(t *testing.T) {
	w := words(t, "murciélago")[0]
	lab := NewLab(w, newRand())

	shuffled := lab.Shuffled()
	assert.ElementsMatch(t, w.Syllables, shuffled)
	assert.NotEqual(t, w.Syllables, shuffled)
	assert.Equal(t, "murciélago", lab.Target())

	order := make([]int, len(w.Syllables))
	for i, s := range w.Syllables {
		for j, candidate := range shuffled {
			if candidate == s {
				order[i] = j
			}
		}
	}
	ok, err := lab.Check(order)
	require.NoError(t, err)
	assert.True(t, ok)

	reversed := make([]int, len(order))
	for i := range order {
		reversed[i] = order[len(order)-1-i]
	}
	ok, err = lab.Check(reversed)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = lab.Check([]int{0, 1})
	assert.Error(t, err)
	_, err = lab.Check([]int{0, 0, 1, 2})
	assert.ErrorContains(t, err, "used twice")
	_, err = lab.Check([]int{0, 1, 2, 9})
	assert.ErrorContains(t, err, "does not exist")
}

func TestLab_Target(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{word: "Árbol", want: "árbol"},
		{word: "pingüino", want: "pingüino"},
		{word: "niño", want: "niño"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			lab := NewLab(vocabulary.Word{Word: tt.word, Syllables: []string{tt.word}}, newRand())
			assert.Equal(t, tt.want, lab.Target())
			assert.Equal(t, tt.want, spanishLetters(tt.want+"-1"))
		})
	}
}

func TestLab_SingleSyllable(t *testing.T) {
	lab := NewLab(words(t, "sol")[0], newRand())
	ok, err := lab.Check([]int{0})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewRandomSession(t *testing.T) {
	all := words(t, "casa", "café", "árbol")

	rounds, err := NewRandomSession(all, 15, newRand())
	require.NoError(t, err)
	require.Len(t, rounds, 15)
	for i, r := range rounds {
		assert.Equal(t, i+1, r.Number)
		assert.Contains(t, Kinds(), r.Kind)
		assert.Contains(t, all, r.Word)
	}

	_, err = NewRandomSession(nil, 5, newRand())
	assert.ErrorIs(t, err, ErrNoWords)
	_, err = NewRandomSession(all, 0, newRand())
	assert.Error(t, err)
	_, err = NewRandomSession(all, 51, newRand())
	assert.Error(t, err)
}

func uniq(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
