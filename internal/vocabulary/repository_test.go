package vocabulary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/silabario/internal/config"
	"github.com/at-ishikawa/silabario/internal/syllable"
)

func mustWord(t *testing.T, raw string) *Word {
	t.Helper()
	w, err := NewWord(raw)
	require.NoError(t, err)
	return &w
}

func TestYAMLRepository_MissingFile(t *testing.T) {
	repo := NewYAMLRepository(filepath.Join(t.TempDir(), "words.yml"))

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	found, err := repo.FindByWord(context.Background(), "casa")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestYAMLRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "words.yml")
	repo := NewYAMLRepository(path)

	require.NoError(t, repo.Create(ctx, mustWord(t, "árbol")))
	require.NoError(t, repo.BatchCreate(ctx, []*Word{mustWord(t, "casa"), mustWord(t, "café")}))

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"árbol", "casa", "café"}, []string{got[0].Word, got[1].Word, got[2].Word})
	assert.Equal(t, []string{"ár", "bol"}, got[0].Syllables)
	assert.Equal(t, syllable.CategoryLlana, got[0].Category)

	found, err := repo.FindByWord(ctx, "CAFÉ")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 1, found.StressIndex)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "stress_index: 1")
	assert.Contains(t, string(data), "category: aguda")
}

func TestYAMLRepository_Duplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewYAMLRepository(filepath.Join(t.TempDir(), "words.yml"))
	require.NoError(t, repo.Create(ctx, mustWord(t, "casa")))

	err := repo.Create(ctx, mustWord(t, "Casa"))
	assert.ErrorIs(t, err, ErrDuplicateWord)

	err = repo.BatchCreate(ctx, []*Word{mustWord(t, "perro"), mustWord(t, "casa")})
	assert.ErrorIs(t, err, ErrDuplicateWord)

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestYAMLRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewYAMLRepository(filepath.Join(t.TempDir(), "words.yml"))
	require.NoError(t, repo.BatchCreate(ctx, []*Word{mustWord(t, "casa"), mustWord(t, "perro")}))

	updated := mustWord(t, "casa")
	updated.ImageHint = "🏠"
	require.NoError(t, repo.Update(ctx, updated))

	found, err := repo.FindByWord(ctx, "casa")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "🏠", found.ImageHint)

	assert.ErrorIs(t, repo.Update(ctx, mustWord(t, "gato")), ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "CASA"))
	assert.ErrorIs(t, repo.Delete(ctx, "casa"), ErrNotFound)

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "perro", got[0].Word)
}

func TestYAMLRepository_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yml")
	require.NoError(t, os.WriteFile(path, []byte("word: [unclosed"), 0o644))

	_, err := NewYAMLRepository(path).FindAll(context.Background())
	assert.Error(t, err)
}

func TestOpenRepository(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		want    any
		wantErr bool
	}{
		{
			name: "yaml backend",
			cfg:  config.Config{Vocabulary: config.VocabularyConfig{Backend: config.BackendYAML, File: "words.yml"}},
			want: &YAMLRepository{},
		},
		{
			name: "mysql backend",
			cfg: config.Config{
				Vocabulary: config.VocabularyConfig{Backend: config.BackendMySQL},
				Database:   config.DatabaseConfig{Host: "localhost", Port: 3306, Database: "silabario", Username: "user"},
			},
			want: &DBRepository{},
		},
		{
			name:    "unknown backend",
			cfg:     config.Config{Vocabulary: config.VocabularyConfig{Backend: "sqlite"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, closeFn, err := OpenRepository(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
			assert.NoError(t, closeFn())
		})
	}
}

func TestYAMLRepository_SaveReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.yml")
	repo := NewYAMLRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, mustWord(t, "casa")))
	require.NoError(t, repo.Create(ctx, mustWord(t, "árbol")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "words.yml", entries[0].Name())

	got, err := NewYAMLRepository(path).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestYAMLRepository_FailedSaveKeepsDirectoryClean(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory at the target path makes the final rename fail.
	path := filepath.Join(dir, "words.yml")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "keep"), 0o755))

	err := NewYAMLRepository(path).save([]Word{*mustWord(t, "casa")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "os.Rename")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())
}
