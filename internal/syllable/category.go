package syllable

import (
	"fmt"
	"strings"
)

// Category is the prosodic class of a word by the position of its stressed syllable.
type Category string

const (
	// CategoryAguda is stress on the last syllable.
	CategoryAguda Category = "aguda"
	// CategoryLlana is stress on the second-to-last syllable.
	CategoryLlana Category = "llana"
	// CategoryEsdrujula is stress on the third-from-last syllable or earlier.
	CategoryEsdrujula Category = "esdrujula"
)

var allCategories = []Category{CategoryAguda, CategoryLlana, CategoryEsdrujula}

// Categories returns every category ordered from last-syllable stress backwards.
func Categories() []Category {
	return append([]Category(nil), allCategories...)
}

func (c Category) String() string {
	return string(c)
}

// Label is the capitalised Spanish name shown to players.
func (c Category) Label() string {
	switch c {
	case CategoryAguda:
		return "Aguda"
	case CategoryLlana:
		return "Llana"
	case CategoryEsdrujula:
		return "Esdrújula"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts the stored value, the label, or the English stress name.
func ParseCategory(value string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "aguda", "final", "final-stress":
		return CategoryAguda, nil
	case "llana", "grave", "penultimate", "penultimate-stress":
		return CategoryLlana, nil
	case "esdrujula", "esdrújula", "antepenultimate", "antepenultimate-or-earlier":
		return CategoryEsdrujula, nil
	}
	return "", fmt.Errorf("unknown category %q, valid values are %v", value, allCategories)
}
