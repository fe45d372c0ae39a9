package assets

import (
	_ "embed"
	"fmt"
	"io"
)

const worksheetTemplateName = "worksheet.md.go.tmpl"

//go:embed templates/worksheet.md.go.tmpl
var fallbackWorksheetTemplate string

// WorksheetTemplate is the top-level data structure for worksheet templates
type WorksheetTemplate struct {
	Title      string
	Subtitle   string
	PlayerName string
	Date       string
	Pages      []WorksheetPage
	AnswerKey  bool
}

// WorksheetPage is one printed page
type WorksheetPage struct {
	Number   int
	Total    int
	Sections []WorksheetSection
	Answers  []WorksheetAnswer
}

// WorksheetSection is a numbered exercise on a page.
// Kind is one of syllables, classify, complete, arrows or sentence.
type WorksheetSection struct {
	Number  int
	Kind    string
	Title   string
	Items   []string
	Columns []string
	Rows    int
}

// WorksheetAnswer is the solution for one word on a page
type WorksheetAnswer struct {
	Word      string
	Syllables []string
	Stressed  string
	Category  string
}

func WriteWorksheet(output io.Writer, templatePath string, templateData WorksheetTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, worksheetTemplateName, fallbackWorksheetTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
