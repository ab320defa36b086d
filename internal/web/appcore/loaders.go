package appcore

import (
	"context"
	"errors"
	"net/http"
	"time"

	"blogpreview/framework"
	"blogpreview/internal/meta"
	"blogpreview/internal/metrics"
	"blogpreview/internal/posts"
	"go.uber.org/zap"
)

// LoadPostPage resolves the post behind the catch-all segments and builds
// its preview metadata for the request host.
func LoadPostPage(
	ctx context.Context,
	appCtx *Context,
	r *http.Request,
	params framework.CatchAllParams,
) (PostPageView, error) {
	service, err := postsService(appCtx)
	if err != nil {
		return PostPageView{}, err
	}

	started := time.Now()
	record, err := service.Resolve(ctx, params.Segments)
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			appCtx.metrics.ObserveResolve(metrics.OutcomeNotFound, time.Since(started))
		} else {
			appCtx.metrics.ObserveResolve(metrics.OutcomeError, time.Since(started))
		}
		return PostPageView{}, err
	}

	bundle, err := meta.Build(record, r.Host, appCtx.meta)
	if err != nil {
		appCtx.metrics.ObserveResolve(metrics.OutcomeMalformed, time.Since(started))
		return PostPageView{}, err
	}

	if bundle.Degraded {
		appCtx.log.Warn("post has no featured image, using fallback",
			zap.String("identifier", posts.Identifier(params.Segments)),
			zap.String("image", bundle.Image),
		)
		appCtx.metrics.ObserveResolve(metrics.OutcomeDegraded, time.Since(started))
	} else {
		appCtx.metrics.ObserveResolve(metrics.OutcomeFound, time.Since(started))
	}

	return newPostPageView(bundle), nil
}

func postsService(appCtx *Context) (*posts.Service, error) {
	if appCtx == nil || appCtx.service == nil {
		return nil, errPostsServiceUnavailable
	}
	return appCtx.service, nil
}
