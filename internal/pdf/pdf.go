package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// ConvertMarkdownToPDF renders a markdown file to PDF. When pdfPath is empty
// the PDF is written next to the markdown file with a .pdf extension.
// It returns the absolute path of the written PDF.
func ConvertMarkdownToPDF(markdownPath string, pdfPath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(markdownPath))
	if ext != ".md" && ext != ".markdown" {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	if pdfPath == "" {
		pdfPath = strings.TrimSuffix(markdownPath, filepath.Ext(markdownPath)) + ".pdf"
	}
	if err := ConvertMarkdown(content, pdfPath); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// ConvertMarkdown renders markdown content to a PDF file at pdfPath.
func ConvertMarkdown(content []byte, pdfPath string) error {
	if dir := filepath.Dir(pdfPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	return nil
}
