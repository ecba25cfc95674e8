package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/closedai/healthgate/internal/api"
	"github.com/closedai/healthgate/internal/apikey"
	"github.com/closedai/healthgate/internal/config"
	"github.com/closedai/healthgate/internal/healthdata"
	"github.com/closedai/healthgate/internal/httputil"
	"github.com/closedai/healthgate/internal/provider"
	"github.com/closedai/healthgate/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	slog.Info("starting healthgate", "addr", cfg.Addr, "version", "0.1.0")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTelemetry, err := telemetry.Init(ctx, "healthgate", cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}

	endpoints := provider.Endpoints{
		Anthropic:  cfg.AnthropicBaseURL,
		OpenAI:     cfg.OpenAIBaseURL,
		XAI:        cfg.XAIBaseURL,
		OpenRouter: cfg.OpenRouterBaseURL,
	}

	factory := provider.NewFactory(endpoints, httputil.DefaultStreamingClient())
	validator := apikey.NewValidator(endpoints, httputil.DefaultClient())
	store := healthdata.NewStore()

	handler := api.NewHandler(api.HandlerConfig{
		Factory:     factory,
		Validator:   validator,
		Store:       store,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     handler,
		ReadTimeout: 30 * time.Second,
		// No write timeout: chat streams stay open as long as the
		// upstream produces tokens.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	if err := shutdownTelemetry(shutdownCtx); err != nil {
		slog.Warn("telemetry shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
