// Package app assembles the preview server from configuration.
package app

import (
	"context"
	"fmt"
	"net/http"

	"blogpreview/framework/httpserver"
	"blogpreview/internal/config"
	"blogpreview/internal/gql"
	"blogpreview/internal/metrics"
	"blogpreview/internal/posts"
	"blogpreview/internal/web"
	"go.uber.org/zap"
)

type App struct {
	Config  config.Config
	Posts   *posts.Service
	Metrics *metrics.Metrics
	Handler http.Handler

	log *zap.Logger
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	service := posts.NewService(gql.NewClient(cfg, log), log)

	var m *metrics.Metrics
	if cfg.MetricsPath != "" {
		m = metrics.New()
	}

	handler, err := web.NewHandler(cfg, service, log, m)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}

	return &App{
		Config:  cfg,
		Posts:   service,
		Metrics: m,
		Handler: handler,
		log:     log,
	}, nil
}

// Serve blocks until ctx is cancelled or the listener fails.
func (a *App) Serve(ctx context.Context) error {
	a.log.Info("starting post preview server",
		zap.String("addr", a.Config.ListenAddr),
		zap.String("graphql_endpoint", a.Config.GraphQLEndpoint),
		zap.Bool("fallback_image", a.Config.FallbackImageURL != ""),
	)
	return httpserver.Run(ctx, a.Config.ListenAddr, a.Handler, a.Config.ShutdownTimeout, a.log)
}
