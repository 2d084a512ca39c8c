package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/at-ishikawa/askdoc/internal/qa"
)

//go:generate mockgen -source=qa_handler.go -destination=../mocks/server/mock_service.go -package=mock_server Service

type Service interface {
	Ask(ctx context.Context, question string) (string, error)
	History(ctx context.Context) ([]qa.Exchange, error)
}

type QAHandler struct {
	service Service
}

func NewQAHandler(service Service) *QAHandler {
	return &QAHandler{service: service}
}

func (h *QAHandler) RegisterRoutes(r chi.Router) {
	r.Post("/ask", h.handleAsk)
	r.Get("/history", h.handleHistory)
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

func (h *QAHandler) handleAsk(w http.ResponseWriter, r *http.Request) {
	var payload askRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question := strings.TrimSpace(payload.Question)
	if question == "" {
		respondError(w, http.StatusUnprocessableEntity, "question is required")
		return
	}

	answer, err := h.service.Ask(r.Context(), question)
	if err != nil {
		slog.Default().Error("failed to answer a question",
			slog.String("requestID", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		respondError(w, http.StatusInternalServerError, "failed to answer the question")
		return
	}

	respondJSON(w, http.StatusOK, askResponse{Answer: answer})
}

func (h *QAHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	exchanges, err := h.service.History(r.Context())
	if err != nil {
		slog.Default().Error("failed to read the history",
			slog.String("requestID", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		respondError(w, http.StatusInternalServerError, "failed to read the history")
		return
	}
	if exchanges == nil {
		exchanges = []qa.Exchange{}
	}

	respondJSON(w, http.StatusOK, exchanges)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Default().Warn("failed to write a response", slog.Any("error", err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
