package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_server "github.com/at-ishikawa/askdoc/internal/mocks/server"
	"github.com/at-ishikawa/askdoc/internal/qa"
)

func TestQAHandler_Ask(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mock_server.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns the answer",
			body: `{"question": "  What is 2+2?  "}`,
			setupMock: func(m *mock_server.MockService) {
				m.EXPECT().Ask(gomock.Any(), "What is 2+2?").Return("4", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"answer":"4"}`,
		},
		{
			name:       "malformed body",
			body:       `{"question":`,
			setupMock:  func(m *mock_server.MockService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request body"}`,
		},
		{
			name:       "blank question",
			body:       `{"question": "   "}`,
			setupMock:  func(m *mock_server.MockService) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"question is required"}`,
		},
		{
			name:       "missing question",
			body:       `{}`,
			setupMock:  func(m *mock_server.MockService) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"question is required"}`,
		},
		{
			name: "service error",
			body: `{"question": "What is 2+2?"}`,
			setupMock: func(m *mock_server.MockService) {
				m.EXPECT().Ask(gomock.Any(), "What is 2+2?").Return("", errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"failed to answer the question"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mock_server.NewMockService(ctrl)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()

			NewRouter(service, []string{"*"}).ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, resp.Body.String())
		})
	}
}

func TestQAHandler_History(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(m *mock_server.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns exchanges most recent first",
			setupMock: func(m *mock_server.MockService) {
				m.EXPECT().History(gomock.Any()).Return([]qa.Exchange{
					{Question: "Q2", Answer: "A2"},
					{Question: "Q1", Answer: "A1"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"question":"Q2","answer":"A2"},{"question":"Q1","answer":"A1"}]`,
		},
		{
			name: "empty history is an empty array",
			setupMock: func(m *mock_server.MockService) {
				m.EXPECT().History(gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "service error",
			setupMock: func(m *mock_server.MockService) {
				m.EXPECT().History(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"failed to read the history"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mock_server.NewMockService(ctrl)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
			resp := httptest.NewRecorder()

			NewRouter(service, []string{"*"}).ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.JSONEq(t, tt.wantBody, resp.Body.String())
		})
	}
}

func TestNewRouter_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	resp := httptest.NewRecorder()

	NewRouter(mock_server.NewMockService(ctrl), nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		allowedOrigins []string
		method         string
		origin         string
		wantStatus     int
		wantOrigin     string
	}{
		{
			name:           "wildcard allows any origin",
			allowedOrigins: []string{"*"},
			method:         http.MethodGet,
			origin:         "http://example.com",
			wantStatus:     http.StatusOK,
			wantOrigin:     "*",
		},
		{
			name:           "listed origin is echoed",
			allowedOrigins: []string{"http://localhost:3000"},
			method:         http.MethodGet,
			origin:         "http://localhost:3000",
			wantStatus:     http.StatusOK,
			wantOrigin:     "http://localhost:3000",
		},
		{
			name:           "unlisted origin gets no allow header",
			allowedOrigins: []string{"http://localhost:3000"},
			method:         http.MethodGet,
			origin:         "http://evil.example.com",
			wantStatus:     http.StatusOK,
			wantOrigin:     "",
		},
		{
			name:           "preflight is answered without reaching the handler",
			allowedOrigins: []string{"http://localhost:3000"},
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			wantStatus:     http.StatusNoContent,
			wantOrigin:     "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(tt.method, "/api/history", nil)
			req.Header.Set("Origin", tt.origin)
			resp := httptest.NewRecorder()

			corsMiddleware(tt.allowedOrigins)(next).ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantOrigin, resp.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, OPTIONS", resp.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}
