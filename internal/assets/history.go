package assets

import (
	"fmt"
	"io"
	"time"

	"github.com/at-ishikawa/askdoc/internal/qa"
)

// HistoryTemplate is the data passed to the history export template
type HistoryTemplate struct {
	Title      string
	ExportedAt time.Time
	Exchanges  []qa.Exchange
}

func WriteHistory(output io.Writer, templatePath string, templateData HistoryTemplate) error {
	tmpl, err := ParseHistoryTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseHistoryTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
