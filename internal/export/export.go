// Package export writes the stored question history to a markdown or PDF file.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/askdoc/internal/assets"
	"github.com/at-ishikawa/askdoc/internal/pdf"
	"github.com/at-ishikawa/askdoc/internal/qa"
)

// Format is the output format of an export. It implements pflag.Value.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

var _ pflag.Value = (*Format)(nil)

func (f *Format) String() string {
	return string(*f)
}

func (f *Format) Set(value string) error {
	switch Format(strings.ToLower(value)) {
	case FormatMarkdown, "md":
		*f = FormatMarkdown
	case FormatPDF:
		*f = FormatPDF
	default:
		return fmt.Errorf("must be one of %s or %s", FormatMarkdown, FormatPDF)
	}
	return nil
}

func (f *Format) Type() string {
	return "format"
}

type Exporter struct {
	api          qa.API
	templatePath string
	title        string
	now          func() time.Time
}

func NewExporter(api qa.API, templatePath string, title string) *Exporter {
	return &Exporter{
		api:          api,
		templatePath: templatePath,
		title:        title,
		now:          time.Now,
	}
}

// Export fetches the history and writes it to outputPath in the given format.
// For PDF exports the markdown is written next to the PDF with a .md
// extension. It returns the path of the written file.
func (e *Exporter) Export(ctx context.Context, outputPath string, format Format) (string, error) {
	exchanges, err := e.api.History(ctx)
	if err != nil {
		return "", fmt.Errorf("api.History() > %w", err)
	}

	var buf bytes.Buffer
	if err := assets.WriteHistory(&buf, e.templatePath, assets.HistoryTemplate{
		Title:      e.title,
		ExportedAt: e.now(),
		Exchanges:  exchanges,
	}); err != nil {
		return "", fmt.Errorf("assets.WriteHistory() > %w", err)
	}

	markdownPath := outputPath
	if format == FormatPDF {
		markdownPath = strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".md"
	}
	if dir := filepath.Dir(markdownPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(markdownPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	if format != FormatPDF {
		return markdownPath, nil
	}

	pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath, outputPath)
	if err != nil {
		return "", fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
	}
	return pdfPath, nil
}
