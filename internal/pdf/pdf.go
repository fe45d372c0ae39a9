// Package pdf turns rendered Markdown worksheets into printable PDF files.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// Options controls the PDF layout.
type Options struct {
	Orientation string
	PaperSize   string
	// HorizontalRuleNewPage starts a new page at every "---" line.
	HorizontalRuleNewPage bool
	// Encoding is the code page used to render non-ASCII letters with the core fonts.
	Encoding string
}

// DefaultOptions prints A4 portrait pages with Spanish letters.
func DefaultOptions() Options {
	return Options{
		Orientation:           "P",
		PaperSize:             "A4",
		HorizontalRuleNewPage: true,
		Encoding:              "cp1252",
	}
}

// ConvertMarkdownToPDF converts a markdown file to PDF next to it and returns the PDF path.
func ConvertMarkdownToPDF(markdownPath string, opts Options) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	var renderOptions []mdtopdf.RenderOption
	if opts.HorizontalRuleNewPage {
		renderOptions = append(renderOptions, mdtopdf.IsHorizontalRuleNewPage(true))
	}
	if opts.Encoding != "" {
		renderOptions = append(renderOptions, mdtopdf.WithUnicodeTranslator(opts.Encoding))
	}

	renderer := mdtopdf.NewPdfRenderer(opts.Orientation, opts.PaperSize, pdfPath, "", renderOptions, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
