package qa

import (
	"context"
	"log/slog"
)

// Loader restores the history stored on the server.
type Loader struct {
	api     API
	history *History
	view    View
}

func NewLoader(api API, history *History, view View) *Loader {
	return &Loader{
		api:     api,
		history: history,
		view:    view,
	}
}

// Load replaces the history with the server's list. Failures are silent and
// leave the history untouched.
func (l *Loader) Load(ctx context.Context) {
	items, err := l.api.History(ctx)
	if err != nil {
		slog.Default().Debug("history is not available", slog.Any("error", err))
		return
	}

	l.history.Replace(items)
	l.view.ShowHistory(l.history.Items())
}
