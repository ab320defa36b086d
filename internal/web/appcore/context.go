package appcore

import (
	"errors"

	"blogpreview/internal/meta"
	"blogpreview/internal/metrics"
	"blogpreview/internal/posts"
	"go.uber.org/zap"
)

var errPostsServiceUnavailable = errors.New("posts service unavailable")

type Context struct {
	service *posts.Service
	log     *zap.Logger
	meta    meta.Options
	metrics *metrics.Metrics
}

type Options struct {
	Logger  *zap.Logger
	Meta    meta.Options
	Metrics *metrics.Metrics
}

func NewContext(service *posts.Service, opts Options) *Context {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Context{
		service: service,
		log:     log.Named("web"),
		meta:    opts.Meta,
		metrics: opts.Metrics,
	}
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, posts.ErrNotFound)
}
