package appcore

import (
	"blogpreview/internal/meta"
)

type PostPageView struct {
	PageTitle string
	Tags      []meta.Tag
	Target    string
}

func newPostPageView(bundle meta.Bundle) PostPageView {
	return PostPageView{
		PageTitle: bundle.Title,
		Tags:      bundle.Tags(),
		Target:    bundle.URL,
	}
}

type NotFoundView struct {
	PageTitle   string
	RequestPath string
}

func NewNotFoundView(path string) NotFoundView {
	if path == "" {
		path = "/"
	}
	return NotFoundView{
		PageTitle:   "404 Not Found",
		RequestPath: path,
	}
}
