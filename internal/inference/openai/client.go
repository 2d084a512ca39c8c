package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/askdoc/internal/config"
	"github.com/at-ishikawa/askdoc/internal/inference"
)

const defaultBaseURL = "https://api.openai.com/v1"

type Client struct {
	httpClient       *resty.Client
	model            string
	maxTokens        int
	temperature      float32
	maxRetryAttempts uint
}

var _ inference.Client = (*Client)(nil)

func NewClient(cfg config.OpenAIConfig, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            cfg.Model,
		maxTokens:        cfg.MaxTokens,
		temperature:      cfg.Temperature,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float32   `json:"temperature"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const RoleSystem Role = "system"

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// network-related errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// 5xx errors
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	// rate limiting
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// AnswerQuestion implements the inference.Client interface
func (client *Client) AnswerQuestion(
	ctx context.Context,
	params inference.AnswerQuestionRequest,
) (string, error) {
	var answer string
	if err := retry.Do(
		func() error {
			response, err := client.answerQuestion(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			answer = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying OpenAI API call",
				"attempt", n+1,
				"question", params.Question,
				"lastError", err)
		}),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}
	return answer, nil
}

func buildPrompt(question, context string) string {
	var b strings.Builder
	b.WriteString("You are a helpful assistant for information in docs. ")
	b.WriteString("Answer ONLY using the provided rules context. ")
	b.WriteString("If the answer is not found, say honestly you don't know. ")
	b.WriteString("\nRules Context:\n")
	b.WriteString(context)
	b.WriteString("\nUser Question: ")
	b.WriteString(question)
	b.WriteString("\nAnswer:")
	return b.String()
}

func (client *Client) answerQuestion(
	ctx context.Context,
	params inference.AnswerQuestionRequest,
) (string, error) {
	requestBody := ChatCompletionRequest{
		Model:       client.model,
		MaxTokens:   client.maxTokens,
		Temperature: client.temperature,
		Messages: []Message{
			{Role: RoleSystem, Content: buildPrompt(params.Question, params.Context)},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody, ok := response.Result().(*ChatCompletionResponse)
	if !ok || responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"model", responseBody.Model,
		"usage", responseBody.Usage,
		"finishReason", responseBody.Choices[0].FinishReason,
	)

	return strings.TrimSpace(responseBody.Choices[0].Message.Content), nil
}
