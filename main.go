package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blogpreview/internal/app"
	"blogpreview/internal/config"
	"blogpreview/internal/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, log)
	if err != nil {
		log.Fatal("handler setup failed", zap.Error(err))
	}

	if err := a.Serve(ctx); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
