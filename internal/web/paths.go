package web

import (
	"fmt"

	"blogpreview/framework/router"
)

var postRouter = mustRouter(PostRoutePattern)

func mustRouter(patterns ...string) *router.Router {
	r, err := router.New(patterns...)
	if err != nil {
		panic(fmt.Sprintf("compile routes: %v", err))
	}
	return r
}

// PostSegments maps a request path to the segments the post route would
// resolve. It reports false for paths the route does not serve, like "/".
func PostSegments(requestPath string) ([]string, bool) {
	match, ok := postRouter.Match(requestPath)
	if !ok {
		return nil, false
	}

	segments, ok := match.Segments(postPathParam)
	if !ok || len(segments) == 0 {
		return nil, false
	}
	return segments, true
}
