package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/askdoc/internal/qa"
)

// AskCLI reads questions from stdin and submits them one at a time.
type AskCLI struct {
	*InteractiveCLI
	controller *qa.Controller
}

func NewAskCLI(controller *qa.Controller, stdin io.Reader, stdout io.Writer) *AskCLI {
	return &AskCLI{
		InteractiveCLI: NewInteractiveCLI(stdin, stdout),
		controller:     controller,
	}
}

func isExitCommand(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "quit", "exit":
		return true
	}
	return false
}

func (a *AskCLI) Session(ctx context.Context) error {
	_, _ = a.bold.Fprint(a.stdoutWriter, "Question: ")

	input, err := a.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading input: %w", err)
	}
	eof := errors.Is(err, io.EOF)
	if eof {
		_, _ = fmt.Fprintln(a.stdoutWriter)
	}

	if isExitCommand(input) {
		return errEnd
	}
	a.controller.Submit(ctx, input)

	if eof {
		return errEnd
	}
	return nil
}
