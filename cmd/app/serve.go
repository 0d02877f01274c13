package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drugdiscovery/internal/analysis"
	"drugdiscovery/internal/config"
	"drugdiscovery/internal/extract"
	"drugdiscovery/internal/httpserver"
	"drugdiscovery/internal/llm"
	"drugdiscovery/internal/transport"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP endpoint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return serve(cmd.Context(), cfg)
	},
}

func serve(parent context.Context, cfg config.Config) error {
	logger := newLogger(cfg.LogLevel)

	if cfg.Gateway.APIKey == "" {
		logger.Warn("AI gateway credential is not set, analysis requests will fail",
			slog.String("env", "AI_GATEWAY_API_KEY"))
	}

	extractor, err := extract.ByName(cfg.Analysis.Extractor)
	if err != nil {
		return err
	}

	httpClient := transport.NewHTTPClient(cfg.RequestTimeout)
	llmClient := llm.NewGatewayClient(cfg.Gateway, httpClient, logger)

	gateway := analysis.NewGateway(analysis.GatewayConfig{
		APIKey:       cfg.Gateway.APIKey,
		Model:        cfg.Gateway.Model,
		Temperature:  cfg.Gateway.Temperature,
		Client:       llmClient,
		Extract:      extractor,
		StrictSchema: cfg.Analysis.StrictSchema,
		Logger:       logger,
	})

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Logger:         logger,
		AnalyzeHandler: httpserver.NewAnalyzeHandler(gateway, logger, cfg.MaxBodyBytes),
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("model", cfg.Gateway.Model),
			slog.String("extractor", cfg.Analysis.Extractor))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return err
		}
		return nil
	})

	err = g.Wait()
	logger.Info("server stopped")
	return err
}

func newLogger(level string) *slog.Logger {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}
