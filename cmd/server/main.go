package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/config"
	"resume-builder/internal/logging"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.App.LogLevel, "resume-builder", cfg.App.Version)

	// the document cannot be typeset without its fonts; refuse to serve
	fonts, err := infra.LoadFontSet(cfg.Render.FontsDir)
	if err != nil {
		logger.Error("font assets missing", "dir", cfg.Render.FontsDir, "error", err)
		os.Exit(1)
	}
	logger.Info("fonts loaded", "files", fonts.Paths())

	var limiter *rate.Limiter
	if cfg.Render.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Render.RatePerSecond), cfg.Render.Burst)
	}

	renderer := infra.NewChromedpRenderer(cfg.Render.ChromePath, cfg.Render.Timeout)
	processor := usecase.NewProcessor(renderer, usecase.FontFaces(fonts.URLs()), limiter)

	h := httpadapter.NewHandler(processor, logger, cfg.App.Version)
	app := httpadapter.NewApp(h, httpadapter.Options{
		BodyLimit:      cfg.Server.BodyLimit,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Server.Port, "env", cfg.App.Environment, "production", cfg.IsProduction())
		errCh <- app.Listen(":" + cfg.Server.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
