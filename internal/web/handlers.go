package web

import (
	"fmt"
	"net/http"

	"blogpreview/framework"
	"blogpreview/framework/httpserver"
	"blogpreview/internal/config"
	"blogpreview/internal/meta"
	"blogpreview/internal/metrics"
	"blogpreview/internal/posts"
	"blogpreview/internal/web/appcore"
	"blogpreview/internal/web/components"
	"github.com/a-h/templ"
	"go.uber.org/zap"
)

// NewHandler wires the post preview route into the page server. m may be
// nil, in which case nothing is recorded and no metrics path is mounted.
func NewHandler(
	cfg config.Config,
	service *posts.Service,
	log *zap.Logger,
	m *metrics.Metrics,
) (http.Handler, error) {
	if log == nil {
		log = zap.NewNop()
	}

	appCtx := appcore.NewContext(service, appcore.Options{
		Logger:  log,
		Meta:    meta.Options{FallbackImageURL: cfg.FallbackImageURL},
		Metrics: m,
	})

	serverCfg := httpserver.Config[*appcore.Context]{
		AppContext: appCtx,
		Handlers:   Handlers(),
		CachePolicies: httpserver.CachePolicies{
			HTML:  cfg.CacheControl,
			Error: cfg.CacheControl,
		},
		IsNotFoundError: appcore.IsNotFoundError,
		NotFoundPage:    notFoundPage,
		ErrorPage:       components.ServerError,
		Logger:          log.Named("http"),
	}
	if m != nil {
		serverCfg.MetricsPath = cfg.MetricsPath
		serverCfg.MetricsHandler = m.Handler()
		serverCfg.RequestObserver = m
	}

	handler, err := httpserver.New(serverCfg)
	if err != nil {
		return nil, fmt.Errorf("create http server: %w", err)
	}
	return handler, nil
}

func notFoundPage(notFoundContext framework.NotFoundContext) templ.Component {
	view := appcore.NewNotFoundView(notFoundContext.RequestPath)
	return components.NotFound(view.PageTitle, view.RequestPath)
}
