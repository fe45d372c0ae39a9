package syllable

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleWords = []string{
	"casa", "pelota", "café", "árbol", "murciélago", "transporte", "plátano",
	"coche", "papel", "cantan", "pájaro", "camión", "reloj", "poeta", "ciudad",
	"pingüino", "hablar", "perro", "calle", "instante", "día", "mans", "xyz",
	"a", "CASA", "Árbol", "relámpago", "ÁRBOL", "construcción",
}

func TestSyllabify(t *testing.T) {
	tests := []struct {
		name string
		word string
		want []string
	}{
		{name: "open syllables", word: "casa", want: []string{"ca", "sa"}},
		{name: "three open syllables", word: "pelota", want: []string{"pe", "lo", "ta"}},
		{name: "accented final vowel", word: "café", want: []string{"ca", "fé"}},
		{name: "accented first vowel", word: "árbol", want: []string{"ár", "bol"}},
		{name: "diphthong with accent", word: "murciélago", want: []string{"mur", "cié", "la", "go"}},
		{name: "ns coda before consonant", word: "transporte", want: []string{"trans", "por", "te"}},
		{name: "inseparable onset", word: "plátano", want: []string{"plá", "ta", "no"}},
		{name: "ch digraph", word: "coche", want: []string{"co", "che"}},
		{name: "ll digraph", word: "calle", want: []string{"ca", "lle"}},
		{name: "rr digraph", word: "perro", want: []string{"pe", "rro"}},
		{name: "bl cluster", word: "hablar", want: []string{"ha", "blar"}},
		{name: "ns coda at word start", word: "instante", want: []string{"ins", "tan", "te"}},
		{name: "separable consonants", word: "cantan", want: []string{"can", "tan"}},
		{name: "hiatus of strong vowels", word: "poeta", want: []string{"po", "e", "ta"}},
		{name: "diphthong of weak vowels", word: "ciudad", want: []string{"ciu", "dad"}},
		{name: "diaeresis", word: "pingüino", want: []string{"pin", "güi", "no"}},
		{name: "accented weak vowel breaks diphthong", word: "día", want: []string{"dí", "a"}},
		{name: "diphthong ending in accent", word: "camión", want: []string{"ca", "mión"}},
		{name: "upper case", word: "CASA", want: []string{"CA", "SA"}},
		{name: "upper case clusters", word: "TRANSPORTE", want: []string{"TRANS", "POR", "TE"}},
		{name: "upper case accent", word: "Árbol", want: []string{"Ár", "bol"}},
		{name: "single vowel", word: "a", want: []string{"a"}},
		{name: "no vowels", word: "xyz", want: []string{"xyz"}},
		{name: "empty", word: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Syllabify(tt.word)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSyllabify_Properties(t *testing.T) {
	for _, word := range sampleWords {
		t.Run(word, func(t *testing.T) {
			got := Syllabify(word)

			assert.Equal(t, word, strings.Join(got, ""), "syllables must join back into the word")
			for _, s := range got {
				assert.NotEmpty(t, s)
			}
			assert.Equal(t, got, Syllabify(word), "syllabification must be deterministic")
		})
	}
}

func TestSyllabify_PreservesBytes(t *testing.T) {
	tests := []struct {
		name string
		word string
		want []string
	}{
		{name: "invalid byte inside a syllable", word: "ca\xffsa", want: []string{"ca\xff", "sa"}},
		{name: "truncated multibyte sequence", word: "pa\xc3", want: []string{"pa\xc3"}},
		{name: "decomposed accent", word: "cafe\u0301", want: []string{"ca", "fe\u0301"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Syllabify(tt.word)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.word, strings.Join(got, ""))
		})
	}
}

func TestSyllabify_CaseInsensitive(t *testing.T) {
	for _, word := range []string{"casa", "transporte", "murciélago", "plátano", "coche", "hablar", "instante"} {
		t.Run(word, func(t *testing.T) {
			lower := Syllabify(word)
			upper := Syllabify(strings.ToUpper(word))
			require.Len(t, upper, len(lower))
			for i := range lower {
				assert.Equal(t, lower[i], strings.ToLower(upper[i]))
			}
		})
	}
}

func TestLocateStress(t *testing.T) {
	tests := []struct {
		name      string
		syllables []string
		want      int
	}{
		{name: "accent on last syllable", syllables: []string{"ca", "fé"}, want: 1},
		{name: "accent overrides consonant ending", syllables: []string{"ár", "bol"}, want: 0},
		{name: "accent on second syllable", syllables: []string{"mur", "cié", "la", "go"}, want: 1},
		{name: "upper case accent", syllables: []string{"ÁR", "BOL"}, want: 0},
		{name: "first accented syllable wins", syllables: []string{"á", "é"}, want: 0},
		{name: "ends in vowel", syllables: []string{"ca", "sa"}, want: 0},
		{name: "ends in consonant other than n or s", syllables: []string{"pa", "pel"}, want: 1},
		{name: "ends in n", syllables: []string{"can", "tan"}, want: 0},
		{name: "ends in s", syllables: []string{"ca", "sas"}, want: 0},
		{name: "ends in upper case S", syllables: []string{"CA", "SAS"}, want: 0},
		{name: "ends in vowel with three syllables", syllables: []string{"trans", "por", "te"}, want: 1},
		{name: "single syllable without accent", syllables: []string{"sol"}, want: 0},
		{name: "single syllable ending in vowel", syllables: []string{"va"}, want: 0},
		{name: "single syllable with accent", syllables: []string{"más"}, want: 0},
		{name: "empty", syllables: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocateStress(tt.syllables))
		})
	}
}

func TestLocateStress_InRange(t *testing.T) {
	for _, word := range sampleWords {
		if word == "" {
			continue
		}
		t.Run(word, func(t *testing.T) {
			syllables := Syllabify(word)
			got := LocateStress(syllables)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, len(syllables))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		syllables   []string
		stressIndex int
		want        Category
	}{
		{name: "aguda with accent", syllables: []string{"ca", "fé"}, stressIndex: 1, want: CategoryAguda},
		{name: "aguda without accent", syllables: []string{"pa", "pel"}, stressIndex: 1, want: CategoryAguda},
		{name: "single syllable", syllables: []string{"sol"}, stressIndex: 0, want: CategoryAguda},
		{name: "llana", syllables: []string{"ca", "sa"}, stressIndex: 0, want: CategoryLlana},
		{name: "llana with accent", syllables: []string{"ár", "bol"}, stressIndex: 0, want: CategoryLlana},
		{name: "esdrujula", syllables: []string{"pá", "ja", "ro"}, stressIndex: 0, want: CategoryEsdrujula},
		{name: "antepenultimate of four", syllables: []string{"mur", "cié", "la", "go"}, stressIndex: 1, want: CategoryEsdrujula},
		{name: "further back", syllables: []string{"a", "b", "c", "d", "e"}, stressIndex: 0, want: CategoryEsdrujula},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.syllables, tt.stressIndex))
		})
	}
}

func TestClassify_DependsOnlyOnDistance(t *testing.T) {
	a := Classify([]string{"x", "y", "z"}, 1)
	b := Classify([]string{"ca", "mi", "no"}, 1)
	assert.Equal(t, a, b)
}

func TestClassify_PanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Classify([]string{"ca", "sa"}, 2) })
	assert.Panics(t, func() { Classify([]string{"ca", "sa"}, -1) })
	assert.Panics(t, func() { Classify(nil, 0) })
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		word            string
		wantSyllables   []string
		wantStressIndex int
		wantCategory    Category
	}{
		{word: "casa", wantSyllables: []string{"ca", "sa"}, wantStressIndex: 0, wantCategory: CategoryLlana},
		{word: "café", wantSyllables: []string{"ca", "fé"}, wantStressIndex: 1, wantCategory: CategoryAguda},
		{word: "árbol", wantSyllables: []string{"ár", "bol"}, wantStressIndex: 0, wantCategory: CategoryLlana},
		{word: "murciélago", wantSyllables: []string{"mur", "cié", "la", "go"}, wantStressIndex: 1, wantCategory: CategoryEsdrujula},
		{word: "transporte", wantSyllables: []string{"trans", "por", "te"}, wantStressIndex: 1, wantCategory: CategoryLlana},
		{word: "plátano", wantSyllables: []string{"plá", "ta", "no"}, wantStressIndex: 0, wantCategory: CategoryEsdrujula},
		{word: "reloj", wantSyllables: []string{"re", "loj"}, wantStressIndex: 1, wantCategory: CategoryAguda},
		{word: "camión", wantSyllables: []string{"ca", "mión"}, wantStressIndex: 1, wantCategory: CategoryAguda},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := Analyze(tt.word)
			assert.Equal(t, tt.word, got.Word)
			assert.Equal(t, tt.wantSyllables, got.Syllables)
			assert.Equal(t, tt.wantStressIndex, got.StressIndex)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantSyllables[tt.wantStressIndex], got.StressedSyllable())
		})
	}
}

func TestAnalyze_Empty(t *testing.T) {
	got := Analyze("")
	assert.Empty(t, got.Syllables)
	assert.Equal(t, Category(""), got.Category)
	assert.Equal(t, "", got.StressedSyllable())
}

func TestAnalyze_Concurrent(t *testing.T) {
	want := make(map[string]Analysis, len(sampleWords))
	for _, w := range sampleWords {
		want[w] = Analyze(w)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, w := range sampleWords {
				assert.Equal(t, want[w], Analyze(w))
			}
		}()
	}
	wg.Wait()
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		value   string
		want    Category
		wantErr bool
	}{
		{value: "aguda", want: CategoryAguda},
		{value: "final-stress", want: CategoryAguda},
		{value: "Llana", want: CategoryLlana},
		{value: "penultimate-stress", want: CategoryLlana},
		{value: "Esdrújula", want: CategoryEsdrujula},
		{value: "esdrujula", want: CategoryEsdrujula},
		{value: "antepenultimate-or-earlier", want: CategoryEsdrujula},
		{value: "sobresdrujula", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseCategory(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unknown category")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Aguda", CategoryAguda.Label())
	assert.Equal(t, "Llana", CategoryLlana.Label())
	assert.Equal(t, "Esdrújula", CategoryEsdrujula.Label())
	assert.True(t, CategoryLlana.Valid())
	assert.False(t, Category("other").Valid())
	assert.Len(t, Categories(), 3)
}
