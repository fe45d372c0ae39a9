package vocabulary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=repository.go -destination=../mocks/vocabulary/mock_repository.go -package=mock_vocabulary Repository

// Repository defines operations for managing vocabulary words.
// Words are identified case-insensitively by Key.
type Repository interface {
	FindAll(ctx context.Context) ([]Word, error)
	// FindByWord returns nil when the word is not stored.
	FindByWord(ctx context.Context, word string) (*Word, error)
	Create(ctx context.Context, word *Word) error
	BatchCreate(ctx context.Context, words []*Word) error
	Update(ctx context.Context, word *Word) error
	Delete(ctx context.Context, word string) error
}

// YAMLRepository implements Repository on a single YAML file.
// The file is created on the first write.
type YAMLRepository struct {
	path string
	mu   sync.Mutex
}

// NewYAMLRepository creates a new YAMLRepository.
func NewYAMLRepository(path string) *YAMLRepository {
	return &YAMLRepository{path: path}
}

func (r *YAMLRepository) load() ([]Word, error) {
	file, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", r.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var words []Word
	if err := yaml.NewDecoder(file).Decode(&words); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	return words, nil
}

// save encodes words and replaces the file by renaming a temporary file over it,
// so a failed write leaves the previous list intact.
func (r *YAMLRepository) save(words []Word) error {
	if words == nil {
		words = []Word{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(words); err != nil {
		return fmt.Errorf("yaml.NewEncoder().Encode() > %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml.Encoder.Close() > %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp(%s) > %w", dir, err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s > %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s > %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("os.Chmod(%s) > %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("os.Rename(%s) > %w", r.path, err)
	}
	return nil
}

func indexOf(words []Word, word string) int {
	key := Key(word)
	for i, w := range words {
		if Key(w.Word) == key {
			return i
		}
	}
	return -1
}

// FindAll returns all words in file order.
func (r *YAMLRepository) FindAll(ctx context.Context) ([]Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindByWord returns the stored word, or nil if not found.
func (r *YAMLRepository) FindByWord(ctx context.Context, word string) (*Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	words, err := r.load()
	if err != nil {
		return nil, err
	}
	if i := indexOf(words, word); i >= 0 {
		return &words[i], nil
	}
	return nil, nil
}

// Create appends a word. It returns ErrDuplicateWord if the word is already stored.
func (r *YAMLRepository) Create(ctx context.Context, word *Word) error {
	return r.BatchCreate(ctx, []*Word{word})
}

// BatchCreate appends words in a single write. Nothing is written if any word is a duplicate.
func (r *YAMLRepository) BatchCreate(ctx context.Context, batch []*Word) error {
	if len(batch) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	words, err := r.load()
	if err != nil {
		return err
	}
	for _, w := range batch {
		if indexOf(words, w.Word) >= 0 {
			return fmt.Errorf("%w: %q", ErrDuplicateWord, w.Word)
		}
		words = append(words, *w)
	}
	return r.save(words)
}

// Update replaces the stored entry with the same key.
func (r *YAMLRepository) Update(ctx context.Context, word *Word) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	words, err := r.load()
	if err != nil {
		return err
	}
	i := indexOf(words, word.Word)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, word.Word)
	}
	words[i] = *word
	return r.save(words)
}

// Delete removes a word.
func (r *YAMLRepository) Delete(ctx context.Context, word string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	words, err := r.load()
	if err != nil {
		return err
	}
	i := indexOf(words, word)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	return r.save(append(words[:i], words[i+1:]...))
}
