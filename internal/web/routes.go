package web

import (
	"blogpreview/framework"
	"blogpreview/internal/web/appcore"
	"blogpreview/internal/web/components"
	"github.com/a-h/templ"
)

// PostRoutePattern matches any path with at least one segment.
const PostRoutePattern = "/[...postpath]"

const postPathParam = "postpath"

func Handlers() []framework.RouteHandler[*appcore.Context] {
	return []framework.RouteHandler[*appcore.Context]{
		framework.PageOnlyRouteHandler[*appcore.Context, framework.CatchAllParams, appcore.PostPageView]{
			Page: framework.PageModule[*appcore.Context, framework.CatchAllParams, appcore.PostPageView]{
				Pattern:     PostRoutePattern,
				ParseParams: framework.CatchAllParser(PostRoutePattern, postPathParam),
				Load:        appcore.LoadPostPage,
				Render:      renderPostPage,
				Layouts: []framework.LayoutRenderer[appcore.PostPageView]{
					postDocumentLayout,
				},
			},
		},
	}
}

func renderPostPage(view appcore.PostPageView) templ.Component {
	return components.PostRedirect(view.Target)
}

func postDocumentLayout(view appcore.PostPageView, child templ.Component) templ.Component {
	return components.Document(view.PageTitle, view.Tags, child)
}
