package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, envs := range envBindings {
		for _, env := range envs {
			if val, ok := os.LookupEnv(env); ok {
				require.NoError(t, os.Unsetenv(env))
				t.Cleanup(func() { _ = os.Setenv(env, val) })
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 120*time.Second, cfg.RequestTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, "", cfg.Gateway.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.Gateway.BaseURL)
	assert.Equal(t, DefaultModel, cfg.Gateway.Model)
	assert.InDelta(t, 0.7, cfg.Gateway.Temperature, 1e-6)
	assert.Equal(t, "greedy", cfg.Analysis.Extractor)
	assert.False(t, cfg.Analysis.StrictSchema)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "30s")
	t.Setenv("LOVABLE_API_KEY", " secret ")
	t.Setenv("AI_GATEWAY_BASE_URL", "http://localhost:1234/v1/")
	t.Setenv("ANALYSIS_EXTRACTOR", "balanced")
	t.Setenv("ANALYSIS_STRICT_SCHEMA", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "secret", cfg.Gateway.APIKey)
	assert.Equal(t, "http://localhost:1234/v1", cfg.Gateway.BaseURL)
	assert.Equal(t, "balanced", cfg.Analysis.Extractor)
	assert.True(t, cfg.Analysis.StrictSchema)
}

func TestLoadPrefersGatewayKeyOverLegacyName(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_GATEWAY_API_KEY", "primary")
	t.Setenv("LOVABLE_API_KEY", "legacy")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.Gateway.APIKey)
}

func TestLoadFromFileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
http_addr: ":7070"
gateway:
  model: "openai/gpt-5-mini"
  temperature: 0.2
analysis:
  extractor: balanced
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("HTTP_ADDR", ":6060")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":6060", cfg.HTTPAddr)
	assert.Equal(t, "openai/gpt-5-mini", cfg.Gateway.Model)
	assert.InDelta(t, 0.2, cfg.Gateway.Temperature, 1e-6)
	assert.Equal(t, "balanced", cfg.Analysis.Extractor)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{name: "bad duration", env: "HTTP_CLIENT_TIMEOUT", val: "soon"},
		{name: "negative duration", env: "HTTP_CLIENT_TIMEOUT", val: "-1s"},
		{name: "unknown extractor", env: "ANALYSIS_EXTRACTOR", val: "regex"},
		{name: "zero body limit", env: "MAX_BODY_BYTES", val: "0"},
		{name: "temperature too high", env: "AI_GATEWAY_TEMPERATURE", val: "3.5"},
		{name: "zero temperature", env: "AI_GATEWAY_TEMPERATURE", val: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.env, tt.val)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
