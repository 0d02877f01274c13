package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"drugdiscovery/internal/extract"
	"drugdiscovery/internal/formatter"
	"drugdiscovery/internal/llm"
	"drugdiscovery/internal/sequence"
)

// GatewayConfig содержит зависимости Gateway. APIKey передаётся явно,
// Gateway не читает окружение сам.
type GatewayConfig struct {
	APIKey       string
	Model        string
	Temperature  float32
	Client       llm.Client
	Extract      extract.Func
	StrictSchema bool
	Logger       *slog.Logger
}

// Gateway runs one analysis per call: validate, one completion call,
// extract the JSON object, return it. Calls share no mutable state.
type Gateway struct {
	apiKey       string
	model        string
	temperature  float32
	client       llm.Client
	extract      extract.Func
	strictSchema bool
	logger       *slog.Logger
}

func NewGateway(cfg GatewayConfig) *Gateway {
	if cfg.Extract == nil {
		cfg.Extract = extract.Greedy
	}
	// Нулевая температура означает значение по умолчанию.
	if cfg.Temperature == 0 {
		cfg.Temperature = formatter.DefaultTemperature
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gateway{
		apiKey:       cfg.APIKey,
		model:        cfg.Model,
		temperature:  cfg.Temperature,
		client:       cfg.Client,
		extract:      cfg.Extract,
		strictSchema: cfg.StrictSchema,
		logger:       cfg.Logger,
	}
}

// Analyze returns the model's JSON object compacted but otherwise untouched.
// Failures are *Error values; see Status for the HTTP mapping.
func (g *Gateway) Analyze(ctx context.Context, req Request) (json.RawMessage, error) {
	g.logger.InfoContext(ctx, "processing protein sequence",
		slog.String("sequence_prefix", sequence.Prefix(req.ProteinSequence, sequence.LogPrefixLen)))

	if strings.TrimSpace(req.ProteinSequence) == "" {
		return nil, ErrValidation
	}
	if g.apiKey == "" || g.client == nil {
		g.logger.ErrorContext(ctx, "ai gateway credential not configured")
		return nil, ErrConfiguration
	}

	reply, err := g.client.Complete(ctx, formatter.Build(req.ProteinSequence, g.model, g.temperature))
	if err != nil {
		return nil, g.classifyUpstream(ctx, err)
	}

	g.logger.InfoContext(ctx, "ai response received", slog.Int("reply_length", len(reply)))

	candidate, err := g.extract(reply)
	if err != nil {
		g.logger.ErrorContext(ctx, "no JSON found in ai response")
		return nil, withCause(ErrFormat, err)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(candidate)); err != nil {
		g.logger.ErrorContext(ctx, "parse ai response", slog.String("error", err.Error()))
		return nil, Internal(err)
	}
	raw := json.RawMessage(buf.Bytes())

	check := Validate(raw)
	if !check.IsValid {
		g.logger.WarnContext(ctx, "ai response does not match result schema",
			slog.Any("problems", check.Errors),
			slog.Bool("strict", g.strictSchema))
		if g.strictSchema {
			return nil, withCause(ErrFormat, errors.New(strings.Join(check.Errors, "; ")))
		}
	}

	g.logger.InfoContext(ctx, "parsed drug discovery result",
		slog.Int("candidates", check.Candidates))
	return raw, nil
}

func (g *Gateway) classifyUpstream(ctx context.Context, err error) error {
	var statusErr *llm.StatusError
	if !errors.As(err, &statusErr) {
		g.logger.ErrorContext(ctx, "ai gateway call failed", slog.String("error", err.Error()))
		return Internal(err)
	}

	g.logger.ErrorContext(ctx, "ai gateway error",
		slog.Int("status", statusErr.StatusCode),
		slog.String("body", statusErr.Body))

	switch statusErr.StatusCode {
	case http.StatusTooManyRequests:
		return withCause(ErrRateLimit, err)
	case http.StatusPaymentRequired:
		return withCause(ErrQuotaExhausted, err)
	default:
		return withCause(ErrUpstream, err)
	}
}
