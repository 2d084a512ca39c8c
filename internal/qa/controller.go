package qa

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Controller handles question submissions.
//
// Submissions are serialized: one that starts while another is in flight
// waits for it, so history is always in submission order.
type Controller struct {
	api     API
	history *History
	view    View

	mu sync.Mutex
}

func NewController(api API, history *History, view View) *Controller {
	return &Controller{
		api:     api,
		history: history,
		view:    view,
	}
}

// Submit asks the API the trimmed input. Blank input is ignored without any
// visible effect. It reports whether a request was issued.
func (c *Controller) Submit(ctx context.Context, input string) bool {
	question := strings.TrimSpace(input)
	if question == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.view.ClearInput()

	c.view.ShowAnswer(PendingText)
	answer, err := c.api.Ask(ctx, question)
	if err != nil {
		slog.Default().Debug("failed to ask a question",
			slog.String("question", question),
			slog.Any("error", err),
		)
		c.view.ShowAnswer(FailureText)
		return true
	}

	c.view.ShowAnswer(answer)
	c.history.Prepend(Exchange{Question: question, Answer: answer})
	c.view.ShowHistory(c.history.Items())
	return true
}
