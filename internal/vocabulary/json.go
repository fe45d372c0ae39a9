package vocabulary

import (
	"encoding/json"
	"fmt"
	"io"
)

// ImportJSON reads a JSON array of words. Entries without syllables are analysed,
// entries with syllables are checked and get their category recomputed.
func ImportJSON(r io.Reader) ([]Word, error) {
	var raw []Word
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("json.NewDecoder().Decode() > %w", err)
	}

	words := make([]Word, 0, len(raw))
	for i, w := range raw {
		completed, err := Complete(w)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, w.Word, err)
		}
		words = append(words, completed)
	}
	return words, nil
}

// ExportJSON writes words as an indented JSON array.
func ExportJSON(w io.Writer, words []Word) error {
	if words == nil {
		words = []Word{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(words); err != nil {
		return fmt.Errorf("json.NewEncoder().Encode() > %w", err)
	}
	return nil
}
