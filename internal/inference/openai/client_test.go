package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"

	"github.com/at-ishikawa/askdoc/internal/inference"
)

func newCompletion(content string) ChatCompletionResponse {
	return ChatCompletionResponse{
		ID:      "chatcmpl-123",
		Object:  "chat.completion",
		Created: 1677652288,
		Model:   "gpt-4o-mini",
		Choices: []Choice{
			{
				Index: 0,
				Message: ChoiceMessage{
					Role:    "assistant",
					Content: content,
				},
				FinishReason: "stop",
			},
		},
		Usage: Usage{
			PromptTokens:     100,
			CompletionTokens: 50,
			TotalTokens:      150,
		},
	}
}

func TestClient_AnswerQuestion(t *testing.T) {
	request := inference.AnswerQuestionRequest{
		Question: "How many players are on a team?",
		Context:  "Each team has eleven players.\n---\nThe match lasts 90 minutes.",
	}

	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request)
		want              string
		wantCalls         int32
		wantErrorString   string
	}{
		{
			name: "success",
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var reqBody ChatCompletionRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
				assert.Equal(t, "gpt-4o-mini", reqBody.Model)
				assert.Equal(t, 256, reqBody.MaxTokens)
				assert.InDelta(t, 0.7, reqBody.Temperature, 0.0001)
				require.Len(t, reqBody.Messages, 1)
				assert.Equal(t, RoleSystem, reqBody.Messages[0].Role)
				assert.Contains(t, reqBody.Messages[0].Content, "Answer ONLY using the provided rules context.")
				assert.Contains(t, reqBody.Messages[0].Content, "Rules Context:\nEach team has eleven players.\n---\nThe match lasts 90 minutes.")
				assert.Contains(t, reqBody.Messages[0].Content, "User Question: How many players are on a team?\nAnswer:")

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(newCompletion("  Eleven players.\n"))
			},
			want:      "Eleven players.",
			wantCalls: 1,
		},
		{
			name: "server error is retried",
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if calls == 1 {
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error": {"message": "Internal server error"}}`))
					return
				}
				_ = json.NewEncoder(w).Encode(newCompletion("Eleven players."))
			},
			want:      "Eleven players.",
			wantCalls: 2,
		},
		{
			name: "rate limit until retries run out",
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error": {"message": "Rate limit reached"}}`))
			},
			wantCalls:       2,
			wantErrorString: "response error 429",
		},
		{
			name: "client error is not retried",
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided"}}`))
			},
			wantCalls:       1,
			wantErrorString: "response error 401",
		},
		{
			name: "no choices",
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id": "chatcmpl-1", "choices": []}`))
			},
			wantCalls:       1,
			wantErrorString: "empty response body or choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, calls.Add(1), w, r)
			}))
			defer server.Close()

			client := &Client{
				httpClient:       resty.New().SetBaseURL(server.URL),
				model:            "gpt-4o-mini",
				maxTokens:        256,
				temperature:      0.7,
				maxRetryAttempts: 1,
			}
			defer func() {
				_ = client.Close()
			}()

			got, err := client.AnswerQuestion(context.Background(), request)
			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantErrorString != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "unrelated error", err: assert.AnError, want: false},
		{name: "5xx", err: errorString("response error 503: unavailable"), want: true},
		{name: "429", err: errorString("response error 429: slow down"), want: true},
		{name: "timeout", err: errorString("httpClient.Post > dial tcp: i/o timeout"), want: true},
		{name: "4xx", err: errorString("response error 400: bad request"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

type errorString string

func (e errorString) Error() string {
	return string(e)
}
