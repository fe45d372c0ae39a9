// Package datasync copies word lists between sources and a vocabulary repository.
package datasync

import (
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	New     int
	Skipped int
	Updated int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer writes word lists into a repository.
type Importer struct {
	repo   vocabulary.Repository
	writer io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(repo vocabulary.Repository, writer io.Writer) *Importer {
	return &Importer{
		repo:   repo,
		writer: writer,
	}
}

// Import stores words that are not in the repository yet.
// Existing words are skipped, or overwritten when UpdateExisting is set.
// New words are written with a single BatchCreate call.
func (imp *Importer) Import(ctx context.Context, words []vocabulary.Word, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult
	var batch []*vocabulary.Word
	seen := make(map[string]struct{}, len(words))

	for i := range words {
		w := &words[i]
		key := vocabulary.Key(w.Word)
		if _, ok := seen[key]; ok {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q (repeated in input)\n", w.Word)
			result.Skipped++
			continue
		}
		seen[key] = struct{}{}

		existing, err := imp.repo.FindByWord(ctx, w.Word)
		if err != nil {
			return nil, fmt.Errorf("FindByWord(%s) > %w", w.Word, err)
		}

		if existing == nil {
			batch = append(batch, w)
			fmt.Fprintf(imp.writer, "  [NEW]  %q (%s)\n", w.Word, w.Category.Label())
			result.New++
			continue
		}

		if !opts.UpdateExisting || reflect.DeepEqual(*existing, *w) {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q (%s)\n", w.Word, existing.Category.Label())
			result.Skipped++
			continue
		}
		if !opts.DryRun {
			if err := imp.repo.Update(ctx, w); err != nil {
				return nil, fmt.Errorf("Update() > %w", err)
			}
		}
		fmt.Fprintf(imp.writer, "  [UPDATE]  %q (%s)\n", w.Word, w.Category.Label())
		result.Updated++
	}

	if !opts.DryRun && len(batch) > 0 {
		if err := imp.repo.BatchCreate(ctx, batch); err != nil {
			return nil, fmt.Errorf("BatchCreate() > %w", err)
		}
	}
	return &result, nil
}

// Exporter reads every word from a repository.
type Exporter struct {
	repo vocabulary.Repository
}

// NewExporter creates a new Exporter.
func NewExporter(repo vocabulary.Repository) *Exporter {
	return &Exporter{repo: repo}
}

// Export returns all stored words.
func (e *Exporter) Export(ctx context.Context) ([]vocabulary.Word, error) {
	words, err := e.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.FindAll() > %w", err)
	}
	return words, nil
}
