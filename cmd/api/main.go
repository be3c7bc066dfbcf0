package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"moodsync/apps/backend/internal/companion"
	"moodsync/apps/backend/internal/config"
	"moodsync/apps/backend/internal/logger"
	"moodsync/apps/backend/internal/observability"
	"moodsync/apps/backend/internal/server"
	"moodsync/apps/backend/internal/users"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", "error", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	shutdownTracing := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.OTelEnabled,
		ServiceName: cfg.AppName,
		Environment: cfg.AppEnv,
		Version:     cfg.AppVersion,
	})

	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		log.Fatal("ai backend init failed", "error", err)
	}
	gateway := companion.NewGateway(
		generator,
		companion.DefaultRandom,
		log.With("component", "companion"),
		time.Duration(cfg.AITimeoutSeconds)*time.Second,
	)
	directory := users.NewDirectory(users.NewMemoryStore())

	app := server.New(cfg, log, gateway, directory)
	httpServer := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("moodsync api listening",
			"url", "http://0.0.0.0:"+cfg.AppPort,
			"environment", cfg.AppEnv,
			"ai_provider", cfg.AIProvider,
			"model", cfg.GeminiModel,
			"endpoints", server.Endpoints(),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	log.Info("signal received, shutting down gracefully", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracer shutdown failed", "error", err)
	}
}

func newGenerator(ctx context.Context, cfg config.Config) (companion.Generator, error) {
	if cfg.AIProvider == config.ProviderMock {
		return companion.MockGenerator{}, nil
	}
	return companion.NewGeminiClient(ctx, cfg)
}
