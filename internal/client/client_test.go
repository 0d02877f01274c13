package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"drugdiscovery/internal/analysis"
	"drugdiscovery/internal/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultBody = `{
	"proteinAnalysis": {"family": "Kinase", "function": "phosphorylation", "targetSite": "ATP pocket"},
	"drugCandidates": [{
		"name": "Compound A", "smiles": "CCO", "bindingAffinity": 7.2, "confidence": 0.88,
		"properties": {"molecularWeight": 312.4, "logP": 2.1, "hbd": 2, "hba": 5},
		"mechanism": "competitive inhibition"
	}],
	"recommendations": "test further"
}`

func TestAnalyzeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, analyzePath, r.URL.Path)

		var req analysis.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "MKTAYI", req.ProteinSequence)

		_, _ = w.Write([]byte(resultBody))
	}))
	t.Cleanup(server.Close)

	c := New(Config{BaseURL: server.URL + "/", HTTPClient: server.Client()})
	res, err := c.Analyze(context.Background(), "MKTAYI")

	require.NoError(t, err)
	assert.Equal(t, "Kinase", res.ProteinAnalysis.Family)
	require.Len(t, res.DrugCandidates, 1)
	assert.Equal(t, "Compound A", res.DrugCandidates[0].Name)
	assert.Equal(t, 5, res.DrugCandidates[0].Properties.HBA.Int())
	assert.Equal(t, "test further", res.Recommendations)
}

func TestAnalyzeAcceptsLooseNumbers(t *testing.T) {
	const body = `{
	"proteinAnalysis": {"family": "Kinase", "function": "f", "targetSite": "t"},
	"drugCandidates": [{
		"name": "Compound A", "smiles": "CCO", "bindingAffinity": "7.2", "confidence": 0.88,
		"properties": {"molecularWeight": 312.4, "logP": 2.1, "hbd": 2.0, "hba": 5.0},
		"mechanism": "m"
	}],
	"recommendations": "r"
}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	res, err := New(Config{BaseURL: server.URL}).Analyze(context.Background(), "MKT")

	require.NoError(t, err)
	require.Len(t, res.DrugCandidates, 1)
	c := res.DrugCandidates[0]
	assert.InDelta(t, 7.2, float64(c.BindingAffinity), 1e-9)
	assert.Equal(t, 2, c.Properties.HBD.Int())
	assert.Equal(t, 5, c.Properties.HBA.Int())
}

func TestAnalyzeRejectsBlankLocally(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(server.Close)

	_, err := New(Config{BaseURL: server.URL}).Analyze(context.Background(), "  \n")

	assert.ErrorIs(t, err, ErrEmptySequence)
	assert.Zero(t, calls.Load())
}

func TestAnalyzeSurfacesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":"AI credits exhausted. Please add credits to continue."}`))
	}))
	t.Cleanup(server.Close)

	_, err := New(Config{BaseURL: server.URL}).Analyze(context.Background(), "MKT")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	assert.Equal(t, "AI credits exhausted. Please add credits to continue.", apiErr.Error())
}

func TestAnalyzeNonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	t.Cleanup(server.Close)

	_, err := New(Config{BaseURL: server.URL}).Analyze(context.Background(), "MKT")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
}

func TestAnalyzeRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Rate limit exceeded. Please try again later."}`))
			return
		}
		_, _ = w.Write([]byte(resultBody))
	}))
	t.Cleanup(server.Close)

	policy := retry.Policy{
		MaxAttempts: 2,
		Sleep:       func(ctx context.Context, d time.Duration) error { return nil },
	}
	res, err := New(Config{BaseURL: server.URL, Retry: policy}).Analyze(context.Background(), "MKT")

	require.NoError(t, err)
	assert.Equal(t, "Kinase", res.ProteinAnalysis.Family)
	assert.EqualValues(t, 2, calls.Load())
}

func TestAnalyzeExhaustedRetriesKeepServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"Rate limit exceeded. Please try again later."}`))
	}))
	t.Cleanup(server.Close)

	policy := retry.Policy{
		MaxAttempts: 2,
		Sleep:       func(ctx context.Context, d time.Duration) error { return nil },
	}
	_, err := New(Config{BaseURL: server.URL, Retry: policy}).Analyze(context.Background(), "MKT")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "Rate limit exceeded. Please try again later.", apiErr.Message)
}
