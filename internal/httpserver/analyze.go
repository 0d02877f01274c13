package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"drugdiscovery/internal/analysis"
	"drugdiscovery/internal/middleware"
)

// Analyzer выполняет один анализ белковой последовательности.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (json.RawMessage, error)
}

type AnalyzeHandler struct {
	analyzer     Analyzer
	logger       *slog.Logger
	maxBodyBytes int64
}

func NewAnalyzeHandler(analyzer Analyzer, logger *slog.Logger, maxBodyBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:     analyzer,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	req, err := decodeRequest(r.Body)
	if err != nil {
		h.fail(w, r, analysis.Internal(err))
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

func (h *AnalyzeHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, message := analysis.Status(err)
	kind := analysis.KindInternal
	var ae *analysis.Error
	if errors.As(err, &ae) {
		kind = ae.Kind
	}
	h.logger.WarnContext(r.Context(), "analysis failed",
		slog.String("kind", string(kind)),
		slog.Int("status", status),
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.RequestIDFromContext(r.Context())))
	WriteJSONError(w, status, message)
}

func decodeRequest(body io.Reader) (analysis.Request, error) {
	var req analysis.Request
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, errors.New("request body is empty")
		}
		return req, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}
