// Package answer answers questions about the loaded document and keeps the
// answered questions in the history repository.
package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/askdoc/internal/document"
	"github.com/at-ishikawa/askdoc/internal/history"
	"github.com/at-ishikawa/askdoc/internal/inference"
	"github.com/at-ishikawa/askdoc/internal/qa"
)

const (
	// NoDocumentAnswer is returned without asking the model when no document is loaded.
	NoDocumentAnswer = "PDF is not loaded or missing."

	contextSeparator = "\n---\n"
)

type Service struct {
	corpus     *document.Corpus
	topK       int
	client     inference.Client
	repository history.Repository
}

func NewService(corpus *document.Corpus, topK int, client inference.Client, repository history.Repository) *Service {
	return &Service{
		corpus:     corpus,
		topK:       topK,
		client:     client,
		repository: repository,
	}
}

// Ask answers a question from the most relevant parts of the document and
// stores the exchange. Inference failures become the answer text; only
// storage failures are returned as errors.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if s.corpus.Len() == 0 {
		return NoDocumentAnswer, nil
	}

	chunks := s.corpus.Retrieve(question, s.topK)
	answer, err := s.client.AnswerQuestion(ctx, inference.AnswerQuestionRequest{
		Question: question,
		Context:  strings.Join(chunks, contextSeparator),
	})
	if err != nil {
		slog.Default().Warn("failed to generate an answer",
			slog.String("question", question),
			slog.Any("error", err),
		)
		answer = "AI error: " + err.Error()
	}

	record := history.Record{Question: question, Answer: answer}
	if err := s.repository.Create(ctx, &record); err != nil {
		return "", fmt.Errorf("repository.Create() > %w", err)
	}
	return answer, nil
}

// History returns the stored exchanges, most recent first.
func (s *Service) History(ctx context.Context) ([]qa.Exchange, error) {
	records, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.FindAll() > %w", err)
	}

	exchanges := make([]qa.Exchange, 0, len(records))
	for _, record := range records {
		exchanges = append(exchanges, qa.Exchange{Question: record.Question, Answer: record.Answer})
	}
	return exchanges, nil
}
