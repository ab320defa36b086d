package gql

import (
	"net/http"
	"time"

	"blogpreview/internal/config"
	genqlientgraphql "github.com/Khan/genqlient/graphql"
	"go.uber.org/zap"
)

func NewClient(cfg config.Config, log *zap.Logger) genqlientgraphql.Client {
	if log == nil {
		log = zap.NewNop()
	}

	client := &http.Client{
		Timeout: cfg.GraphQLTimeout,
		Transport: &loggingTransport{
			base: http.DefaultTransport,
			log:  log.Named("gql"),
		},
	}

	return genqlientgraphql.NewClient(cfg.GraphQLEndpoint, client)
}

type loggingTransport struct {
	base http.RoundTripper
	log  *zap.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	started := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.log.Debug("content api round trip failed",
			zap.String("endpoint", req.URL.Redacted()),
			zap.Duration("duration", time.Since(started)),
			zap.Error(err),
		)
		return nil, err
	}

	t.log.Debug("content api round trip",
		zap.String("method", req.Method),
		zap.String("endpoint", req.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(started)),
	)
	return resp, nil
}
