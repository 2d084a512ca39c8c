package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const historyTemplateName = "history.md.go.tmpl"

//go:embed templates/history.md.go.tmpl
var fallbackHistoryTemplate string

// ParseHistoryTemplate parses the template at templatePath, falling back to
// the embedded one when the path is empty, missing or unparsable.
func ParseHistoryTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, historyTemplateName, fallbackHistoryTemplate)
}

func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":    strings.Join,
		"oneLine": oneLine,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}

	return tmpl, nil
}

// oneLine collapses whitespace so multi-line text fits in a heading.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
