package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"drugdiscovery/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrInvalidModel  = errors.New("model is required")
	ErrEmptyResponse = errors.New("empty response from model")
)

// StatusError возвращается, когда gateway ответил не-2xx статусом.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// GatewayClient ходит в OpenAI-совместимый /chat/completions. Повторов нет:
// одна попытка на один вызов Complete.
type GatewayClient struct {
	api          *openai.Client
	defaultModel string
	logger       *slog.Logger
}

func NewGatewayClient(cfg config.GatewayConfig, httpClient *http.Client, logger *slog.Logger) *GatewayClient {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	if httpClient != nil {
		apiCfg.HTTPClient = httpClient
	}

	return &GatewayClient{
		api:          openai.NewClientWithConfig(apiCfg),
		defaultModel: cfg.Model,
		logger:       logger,
	}
}

func (c *GatewayClient) Complete(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}
	if model == "" {
		return "", ErrInvalidModel
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", c.classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// classify сводит ошибки go-openai к StatusError, если известен HTTP статус.
func (c *GatewayClient) classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		c.logFailure(apiErr.HTTPStatusCode, apiErr.Message)
		return &StatusError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		body := ""
		if reqErr.Err != nil {
			body = reqErr.Err.Error()
		}
		c.logFailure(reqErr.HTTPStatusCode, body)
		return &StatusError{StatusCode: reqErr.HTTPStatusCode, Body: body}
	}

	return fmt.Errorf("execute request: %w", err)
}

func (c *GatewayClient) logFailure(status int, body string) {
	if c.logger == nil {
		return
	}
	c.logger.Error("ai gateway error",
		slog.Int("status", status),
		slog.String("body", body))
}
