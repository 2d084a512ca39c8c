package qa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"resty.dev/v3"
)

const requestIDHeader = "X-Request-Id"

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer *string `json:"answer"`
}

// Client calls the QA API over HTTP. It never retries.
type Client struct {
	httpClient *resty.Client
}

var _ API = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		httpClient: client,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Ask posts a question to /api/ask. Every failure wraps ErrRequestFailed.
func (client *Client) Ask(ctx context.Context, question string) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, uuid.NewString()).
		SetBody(askRequest{Question: question}).
		Post("/api/ask")
	if err != nil {
		return "", fmt.Errorf("%w: httpClient.Post > %w", ErrRequestFailed, err)
	}
	if !isSuccess(response.StatusCode()) {
		return "", fmt.Errorf("%w: response error %d: %s", ErrRequestFailed, response.StatusCode(), response.String())
	}

	var body askResponse
	if err := decodeJSON(response.Bytes(), &body); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if body.Answer == nil {
		return "", fmt.Errorf("%w: no answer in response body: %s", ErrRequestFailed, response.String())
	}
	return *body.Answer, nil
}

// History fetches /api/history. Every failure wraps ErrHistoryUnavailable.
func (client *Client) History(ctx context.Context) ([]Exchange, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, uuid.NewString()).
		Get("/api/history")
	if err != nil {
		return nil, fmt.Errorf("%w: httpClient.Get > %w", ErrHistoryUnavailable, err)
	}
	if !isSuccess(response.StatusCode()) {
		return nil, fmt.Errorf("%w: response error %d: %s", ErrHistoryUnavailable, response.StatusCode(), response.String())
	}

	var items []Exchange
	if err := decodeJSON(response.Bytes(), &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHistoryUnavailable, err)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: no history in response body: %s", ErrHistoryUnavailable, response.String())
	}
	return items, nil
}

// decodeJSON decodes a response body whatever its declared content type.
func decodeJSON(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("empty response body")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("json.Unmarshal() > %w", err)
	}
	return nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
