// Package client calls the drug-discovery endpoint the way the web form does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"drugdiscovery/internal/analysis"
	"drugdiscovery/internal/retry"
)

const analyzePath = "/drug-discovery"

var ErrEmptySequence = errors.New("protein sequence is empty")

// APIError carries the server's error message verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Retry      retry.Policy
	Logger     *slog.Logger
}

type Client struct {
	baseURL string
	http    *http.Client
	policy  retry.Policy
	logger  *slog.Logger
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		policy:  cfg.Retry,
		logger:  cfg.Logger,
	}
}

// Analyze submits sequence and decodes the result.
func (c *Client) Analyze(ctx context.Context, sequence string) (*analysis.Result, error) {
	if strings.TrimSpace(sequence) == "" {
		return nil, ErrEmptySequence
	}

	payload, err := json.Marshal(analysis.Request{ProteinSequence: sequence})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	resp, err := retry.Do(ctx, c.policy, c.logger, func(ctx context.Context) (*retry.Response, error) {
		return c.post(ctx, payload)
	})
	if err != nil && resp == nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var result analysis.Result
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, payload []byte) (*retry.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &retry.Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

func decodeError(resp *retry.Response) error {
	var body analysis.ErrorResult
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.Error == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
}
