package qa

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/fatih/color"
)

// continuationIndent lines up wrapped text with the text after "Q: " and "A: ".
const continuationIndent = "   "

// Renderer writes a history as labeled question/answer pairs.
type Renderer struct {
	label *color.Color
}

func NewRenderer() *Renderer {
	return &Renderer{
		label: color.New(color.Bold),
	}
}

// Render writes every exchange in list order. The output depends only on
// items, so rendering the same list twice writes the same text.
func (r *Renderer) Render(w io.Writer, items []Exchange) error {
	for _, item := range items {
		if _, err := fmt.Fprintf(w, "%s %s\n%s %s\n",
			r.label.Sprint("Q:"), PlainText(item.Question),
			r.label.Sprint("A:"), PlainText(item.Answer),
		); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return nil
}

// PlainText makes s safe to print on a terminal. Control and bidi formatting
// characters are written as escapes instead of being interpreted, and
// continuation lines are indented so text cannot start a line of its own
// that looks like a label.
func PlainText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteByte('\n')
			b.WriteString(continuationIndent)
		case r == '\t':
			b.WriteRune(r)
		case unicode.IsControl(r), isBidiControl(r):
			if r < 0x80 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				fmt.Fprintf(&b, `\u%04x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isBidiControl(r rune) bool {
	return (r >= '\u202a' && r <= '\u202e') || (r >= '\u2066' && r <= '\u2069') || r == '\u200e' || r == '\u200f'
}
