// Package testutil provides shared test helpers for creating config files and word list fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

// ConfigOption appends a top-level YAML section to the generated config file.
type ConfigOption func(tmpDir string) string

// WithGame overrides the game section.
func WithGame(defaultRounds, batchSize int, completeMode string) ConfigOption {
	return func(string) string {
		return fmt.Sprintf("game:\n  default_rounds: %d\n  batch_size: %d\n  complete_mode: %s\n",
			defaultRounds, batchSize, completeMode)
	}
}

// SetupTestConfig creates a config file pointing every path under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	for _, d := range []string{"data", "worksheets"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`vocabulary:
  backend: yaml
  file: %s
settings:
  file: %s
outputs:
  worksheet_directory: %s
`,
		filepath.Join(tmpDir, "data", "words.yml"),
		filepath.Join(tmpDir, "data", "settings.yml"),
		filepath.Join(tmpDir, "worksheets"),
	)
	for _, opt := range opts {
		configContent += opt(tmpDir)
	}

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CreateWordList analyses each raw word and stores the result in a YAML word list at path.
func CreateWordList(t *testing.T, path string, raw ...string) []vocabulary.Word {
	t.Helper()

	words := make([]vocabulary.Word, 0, len(raw))
	batch := make([]*vocabulary.Word, 0, len(raw))
	for _, r := range raw {
		w, err := vocabulary.NewWord(r)
		require.NoError(t, err)
		words = append(words, w)
	}
	for i := range words {
		batch = append(batch, &words[i])
	}
	require.NoError(t, vocabulary.NewYAMLRepository(path).BatchCreate(context.Background(), batch))
	return words
}
