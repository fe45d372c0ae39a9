package worksheet

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/at-ishikawa/silabario/internal/assets"
	"github.com/at-ishikawa/silabario/internal/pdf"
)

// Writer renders worksheets into an output directory.
type Writer struct {
	outputDir    string
	templatePath string
}

// NewWriter creates a Writer. An empty templatePath uses the embedded template.
func NewWriter(outputDir, templatePath string) *Writer {
	return &Writer{
		outputDir:    outputDir,
		templatePath: templatePath,
	}
}

// Write renders data to <outputDir>/<name>.md and returns the path.
// With withPDF set, the Markdown is also converted and the PDF path is returned second.
func (w *Writer) Write(name string, data assets.WorksheetTemplate, withPDF bool) (string, string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("os.MkdirAll(%s) > %w", w.outputDir, err)
	}

	mdPath := filepath.Join(w.outputDir, name+".md")
	file, err := os.Create(mdPath)
	if err != nil {
		return "", "", fmt.Errorf("os.Create(%s) > %w", mdPath, err)
	}
	if err := assets.WriteWorksheet(file, w.templatePath, data); err != nil {
		_ = file.Close()
		return "", "", fmt.Errorf("assets.WriteWorksheet() > %w", err)
	}
	if err := file.Close(); err != nil {
		return "", "", fmt.Errorf("file.Close() > %w", err)
	}
	slog.Default().Debug("worksheet written", slog.String("path", mdPath), slog.Int("pages", len(data.Pages)))

	if !withPDF {
		return mdPath, "", nil
	}
	pdfPath, err := pdf.ConvertMarkdownToPDF(mdPath, pdf.DefaultOptions())
	if err != nil {
		return mdPath, "", fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
	}
	return mdPath, pdfPath, nil
}
