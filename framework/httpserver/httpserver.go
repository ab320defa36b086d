package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"blogpreview/framework"
	"blogpreview/framework/engine"
	"github.com/a-h/templ"
	"go.uber.org/zap"
)

const defaultCacheControlPolicy = "no-store"
const defaultHealthPath = "/healthz"
const defaultHealthBody = "ok"

type CachePolicies struct {
	HTML   string
	Health string
	Error  string
}

func DefaultCachePolicies() CachePolicies {
	return CachePolicies{
		HTML:   defaultCacheControlPolicy,
		Health: defaultCacheControlPolicy,
		Error:  defaultCacheControlPolicy,
	}
}

// RequestObserver is told about every finished request.
type RequestObserver interface {
	ObserveRequest(method string, status int, duration time.Duration)
}

type Config[C interface{}] struct {
	AppContext C
	Handlers   []framework.RouteHandler[C]

	CachePolicies CachePolicies

	IsNotFoundError func(err error) bool
	NotFoundPage    func(notFoundContext framework.NotFoundContext) templ.Component
	ErrorPage       func() templ.Component

	Logger *zap.Logger

	HealthPath string
	HealthBody string

	MetricsPath     string
	MetricsHandler  http.Handler
	RequestObserver RequestObserver
}

type server[C interface{}] struct {
	cachePolicies CachePolicies
	notFoundPage  func(notFoundContext framework.NotFoundContext) templ.Component
	errorPage     func() templ.Component
	log           *zap.Logger
	healthPath    string
	healthBody    string

	metricsPath    string
	metricsHandler http.Handler

	routeEngine *engine.Engine[C]
}

func New[C interface{}](cfg Config[C]) (http.Handler, error) {
	cachePolicies := withDefaultPolicies(cfg.CachePolicies)
	healthPath := normalizePath(cfg.HealthPath, defaultHealthPath)
	healthBody := strings.TrimSpace(cfg.HealthBody)
	if healthBody == "" {
		healthBody = defaultHealthBody
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	srv := &server[C]{
		cachePolicies: cachePolicies,
		notFoundPage:  cfg.NotFoundPage,
		errorPage:     cfg.ErrorPage,
		log:           log,
		healthPath:    healthPath,
		healthBody:    healthBody,
	}

	routeEngine, err := engine.New(engine.Config[C]{
		AppContext:        cfg.AppContext,
		Handlers:          cfg.Handlers,
		RenderPage:        srv.renderPage,
		IsNotFoundError:   cfg.IsNotFoundError,
		HandleNotFound:    srv.handleNotFound,
		HandleServerError: srv.handleServerError,
	})
	if err != nil {
		return nil, fmt.Errorf("create route engine: %w", err)
	}
	srv.routeEngine = routeEngine

	if metricsPath := strings.TrimSpace(cfg.MetricsPath); metricsPath != "" && cfg.MetricsHandler != nil {
		srv.metricsPath = normalizePath(metricsPath, "")
		srv.metricsHandler = withCachePolicy(cachePolicies.Health, cfg.MetricsHandler)
	}

	// Dispatch directly: ServeMux answers unclean paths with a 301.
	return withAccessLog(log, cfg.RequestObserver, http.HandlerFunc(srv.handleRoute)), nil
}

func (s *server[C]) handleRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		s.handleMethodNotAllowed(w)
		return
	}

	if r.URL.Path == s.healthPath {
		s.handleHealth(w)
		return
	}

	if s.metricsHandler != nil && r.URL.Path == s.metricsPath {
		s.metricsHandler.ServeHTTP(w, r)
		return
	}

	if s.routeEngine.ServeRoute(w, r) {
		return
	}

	s.handleNotFound(w, r, framework.NotFoundContext{
		RequestPath: r.URL.Path,
		Source:      framework.NotFoundSourceUnmatchedRoute,
	})
}

func (s *server[C]) renderPage(r *http.Request, w http.ResponseWriter, component templ.Component) error {
	return s.renderPageWithStatus(r, w, component, 0, s.cachePolicies.HTML)
}

func (s *server[C]) renderPageWithStatus(
	r *http.Request,
	w http.ResponseWriter,
	component templ.Component,
	statusCode int,
	cachePolicy string,
) error {
	setCachePolicy(w, cachePolicy)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if statusCode > 0 {
		w.WriteHeader(statusCode)
	}
	return component.Render(r.Context(), w)
}

func (s *server[C]) handleNotFound(
	w http.ResponseWriter,
	r *http.Request,
	notFoundContext framework.NotFoundContext,
) {
	s.log.Debug("not found",
		zap.String("path", notFoundContext.RequestPath),
		zap.String("source", string(notFoundContext.Source)),
		zap.String("route", notFoundContext.MatchedRoutePattern),
	)

	if s.notFoundPage == nil {
		setCachePolicy(w, s.cachePolicies.Error)
		http.NotFound(w, r)
		return
	}

	component := s.notFoundPage(notFoundContext)
	if component == nil {
		setCachePolicy(w, s.cachePolicies.Error)
		http.NotFound(w, r)
		return
	}
	if err := s.renderPageWithStatus(r, w, component, http.StatusNotFound, s.cachePolicies.Error); err != nil {
		s.handleServerError(w, r, fmt.Errorf("render not found page: %w", err))
	}
}

func (s *server[C]) handleServerError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("server error", zap.String("path", r.URL.Path), zap.Error(err))

	if s.errorPage != nil {
		if component := s.errorPage(); component != nil {
			renderErr := s.renderPageWithStatus(r, w, component, http.StatusInternalServerError, s.cachePolicies.Error)
			if renderErr == nil {
				return
			}
			s.log.Error("render error page", zap.Error(renderErr))
			return
		}
	}

	setCachePolicy(w, s.cachePolicies.Error)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (s *server[C]) handleMethodNotAllowed(w http.ResponseWriter) {
	setCachePolicy(w, s.cachePolicies.Error)
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (s *server[C]) handleHealth(w http.ResponseWriter) {
	setCachePolicy(w, s.cachePolicies.Health)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.healthBody))
}

func normalizePath(path string, fallback string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return fallback
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func withDefaultPolicies(policies CachePolicies) CachePolicies {
	defaults := DefaultCachePolicies()
	if strings.TrimSpace(policies.HTML) == "" {
		policies.HTML = defaults.HTML
	}
	if strings.TrimSpace(policies.Health) == "" {
		policies.Health = defaults.Health
	}
	if strings.TrimSpace(policies.Error) == "" {
		policies.Error = defaults.Error
	}
	return policies
}

func setCachePolicy(w http.ResponseWriter, policy string) {
	policy = strings.TrimSpace(policy)
	if policy == "" {
		return
	}
	w.Header().Set("Cache-Control", policy)
}

func withCachePolicy(policy string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCachePolicy(w, policy)
		next.ServeHTTP(w, r)
	})
}
