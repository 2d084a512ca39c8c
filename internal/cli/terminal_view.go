package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"

	"github.com/at-ishikawa/askdoc/internal/qa"
)

// TerminalView prints answers and the history block to a terminal.
type TerminalView struct {
	out      io.Writer
	renderer *qa.Renderer
	label    *color.Color
	heading  *color.Color

	mu sync.Mutex
}

func NewTerminalView(out io.Writer) *TerminalView {
	return &TerminalView{
		out:      out,
		renderer: qa.NewRenderer(),
		label:    color.New(color.Bold),
		heading:  color.New(color.FgCyan, color.Bold),
	}
}

func (v *TerminalView) ShowAnswer(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.write("%s %s\n", v.label.Sprint("Answer:"), qa.PlainText(text))
}

// ShowHistory redraws the whole history block.
func (v *TerminalView) ShowHistory(items []qa.Exchange) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.write("%s\n", v.heading.Sprintf("History (%d)", len(items)))
	if err := v.renderer.Render(v.out, items); err != nil {
		slog.Default().Debug("failed to render the history", slog.Any("error", err))
	}
}

// ClearInput ends the current question block so the next prompt starts clean.
func (v *TerminalView) ClearInput() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.write("\n")
}

func (v *TerminalView) write(format string, args ...any) {
	if _, err := fmt.Fprintf(v.out, format, args...); err != nil {
		slog.Default().Debug("failed to write to the terminal", slog.Any("error", err))
	}
}
