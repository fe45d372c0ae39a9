package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/silabario/internal/exercise"
	"github.com/at-ishikawa/silabario/internal/syllable"
)

// CategoryFlag restricts output to one category. The zero value selects every category.
type CategoryFlag syllable.Category

// Set implements pflag.Value.
func (c *CategoryFlag) Set(v string) error {
	category, err := syllable.ParseCategory(v)
	if err != nil {
		return fmt.Errorf("invalid value %q, valid values are %q, %q or %q", v,
			syllable.CategoryAguda, syllable.CategoryLlana, syllable.CategoryEsdrujula)
	}
	*c = CategoryFlag(category)
	return nil
}

// String implements pflag.Value.
func (c *CategoryFlag) String() string {
	if c == nil {
		return ""
	}
	return string(*c)
}

// Type implements pflag.Value.
func (c *CategoryFlag) Type() string {
	return "CategoryFlag"
}

type FormatFlag string

const (
	FormatText FormatFlag = "text"
	FormatJSON FormatFlag = "json"
)

// Set implements pflag.Value.
func (f *FormatFlag) Set(v string) error {
	switch v {
	case string(FormatText):
		*f = FormatText
	case string(FormatJSON):
		*f = FormatJSON
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, FormatText, FormatJSON)
	}
	return nil
}

// String implements pflag.Value.
func (f *FormatFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *FormatFlag) Type() string {
	return "FormatFlag"
}

// ModeFlag overrides game.complete_mode. The zero value keeps the configured mode.
type ModeFlag exercise.Mode

// Set implements pflag.Value.
func (m *ModeFlag) Set(v string) error {
	switch exercise.Mode(v) {
	case exercise.ModeInput, exercise.ModeChoice:
		*m = ModeFlag(v)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, exercise.ModeInput, exercise.ModeChoice)
	}
	return nil
}

// String implements pflag.Value.
func (m *ModeFlag) String() string {
	if m == nil {
		return ""
	}
	return string(*m)
}

// Type implements pflag.Value.
func (m *ModeFlag) Type() string {
	return "ModeFlag"
}

var (
	_ pflag.Value = (*CategoryFlag)(nil)
	_ pflag.Value = (*FormatFlag)(nil)
	_ pflag.Value = (*ModeFlag)(nil)
)
