package vocabulary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/silabario/internal/syllable"
)

func TestImportJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Word
		wantErr error
	}{
		{
			name: "legacy word list",
			input: `[
				{"word": "casa", "syllables": ["ca", "sa"], "tonic_index": 0, "type": "llana", "image_hint": "🏠"},
				{"word": "murciélago"}
			]`,
			want: []Word{
				{Word: "casa", Syllables: []string{"ca", "sa"}, StressIndex: 0, Category: syllable.CategoryLlana, ImageHint: "🏠"},
				{Word: "murciélago", Syllables: []string{"mur", "cié", "la", "go"}, StressIndex: 1, Category: syllable.CategoryEsdrujula},
			},
		},
		{
			name:  "empty list",
			input: `[]`,
			want:  []Word{},
		},
		{
			name:    "inconsistent entry",
			input:   `[{"word": "casa", "syllables": ["ca", "sa"], "tonic_index": 1, "type": "llana"}]`,
			wantErr: ErrInconsistent,
		},
		{
			name:    "entry without a word",
			input:   `[{"image_hint": "x"}]`,
			wantErr: ErrEmptyWord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImportJSON(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImportJSON_Malformed(t *testing.T) {
	_, err := ImportJSON(strings.NewReader(`{"word": "casa"}`))
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	w, err := NewWord("árbol")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, []Word{w}))
	assert.JSONEq(t, `[{"word":"árbol","syllables":["ár","bol"],"stress_index":0,"category":"llana"}]`, buf.String())

	imported, err := ImportJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, []Word{w}, imported)

	buf.Reset()
	require.NoError(t, ExportJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
