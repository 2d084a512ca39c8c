package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	AnswerQuestion(ctx context.Context, params AnswerQuestionRequest) (string, error)
}

// AnswerQuestionRequest is a question about a document and the excerpts of it to answer from
type AnswerQuestionRequest struct {
	Question string
	Context  string
}

// DefaultMaxRetryAttempts is the number of retries after the first failed call
const DefaultMaxRetryAttempts uint = 2
