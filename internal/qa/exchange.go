// Package qa is the client side of askdoc: it submits questions to the QA API,
// shows answers, and keeps the most-recent-first history of exchanges.
package qa

import (
	"context"
	"errors"
)

const (
	// PendingText is shown in the answer area while a question is in flight.
	PendingText = "Thinking..."
	// FailureText is shown in the answer area when a question could not be answered.
	FailureText = "Request failed."
)

var (
	ErrRequestFailed      = errors.New("request failed")
	ErrHistoryUnavailable = errors.New("history unavailable")
)

// Exchange is one question and its answer.
type Exchange struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

//go:generate mockgen -source=exchange.go -destination=../mocks/qa/mock_qa.go -package=mock_qa

// API is the remote QA service.
type API interface {
	Ask(ctx context.Context, question string) (string, error)
	History(ctx context.Context) ([]Exchange, error)
}

// View is the presentation surface driven by the Controller and the Loader.
type View interface {
	ShowAnswer(text string)
	ShowHistory(items []Exchange)
	ClearInput()
}
