package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr       string         `mapstructure:"http_addr"`
	LogLevel       string         `mapstructure:"log_level"`
	RequestTimeout time.Duration  `mapstructure:"http_client_timeout"`
	MaxBodyBytes   int64          `mapstructure:"max_body_bytes"`
	Gateway        GatewayConfig  `mapstructure:"gateway"`
	Analysis       AnalysisConfig `mapstructure:"analysis"`
}

// GatewayConfig описывает OpenAI-совместимый AI gateway.
type GatewayConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
}

type AnalysisConfig struct {
	Extractor    string `mapstructure:"extractor"`
	StrictSchema bool   `mapstructure:"strict_schema"`
}

const (
	DefaultBaseURL = "https://ai.gateway.lovable.dev/v1"
	DefaultModel   = "google/gemini-2.5-pro"
)

// envBindings связывает ключи конфигурации с переменными окружения.
// Для ключа с несколькими переменными побеждает первая заданная.
var envBindings = map[string][]string{
	"http_addr":              {"HTTP_ADDR"},
	"log_level":              {"LOG_LEVEL"},
	"http_client_timeout":    {"HTTP_CLIENT_TIMEOUT"},
	"max_body_bytes":         {"MAX_BODY_BYTES"},
	"gateway.api_key":        {"AI_GATEWAY_API_KEY", "LOVABLE_API_KEY"},
	"gateway.base_url":       {"AI_GATEWAY_BASE_URL"},
	"gateway.model":          {"AI_GATEWAY_MODEL"},
	"gateway.temperature":    {"AI_GATEWAY_TEMPERATURE"},
	"analysis.extractor":     {"ANALYSIS_EXTRACTOR"},
	"analysis.strict_schema": {"ANALYSIS_STRICT_SCHEMA"},
}

// Load читает конфигурацию из окружения и, если path не пуст, из YAML файла.
// Переменные окружения имеют приоритет над файлом.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_client_timeout", "120s")
	v.SetDefault("max_body_bytes", 1<<20)
	v.SetDefault("gateway.api_key", "")
	v.SetDefault("gateway.base_url", DefaultBaseURL)
	v.SetDefault("gateway.model", DefaultModel)
	v.SetDefault("gateway.temperature", 0.7)
	v.SetDefault("analysis.extractor", "greedy")
	v.SetDefault("analysis.strict_schema", false)

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Gateway.APIKey = strings.TrimSpace(cfg.Gateway.APIKey)
	cfg.Gateway.BaseURL = strings.TrimRight(cfg.Gateway.BaseURL, "/")
	cfg.Analysis.Extractor = strings.ToLower(strings.TrimSpace(cfg.Analysis.Extractor))

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.RequestTimeout < 0 {
		return errors.New("http_client_timeout must not be negative")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("max_body_bytes must be positive")
	}
	if c.Gateway.BaseURL == "" {
		return errors.New("gateway.base_url is required")
	}
	if c.Gateway.Model == "" {
		return errors.New("gateway.model is required")
	}
	// 0 не отправляется: go-openai опускает temperature с omitempty.
	if c.Gateway.Temperature <= 0 || c.Gateway.Temperature > 2 {
		return fmt.Errorf("gateway.temperature out of range: %v", c.Gateway.Temperature)
	}
	switch c.Analysis.Extractor {
	case "greedy", "balanced":
	default:
		return fmt.Errorf("unknown analysis.extractor: %q", c.Analysis.Extractor)
	}
	return nil
}
