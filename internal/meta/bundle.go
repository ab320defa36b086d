// Package meta derives the Open Graph metadata bundle for a post.
package meta

import (
	"errors"
	"fmt"
	"strings"

	"blogpreview/internal/posts"
	"blogpreview/internal/sanitize"
)

const (
	ogType   = "article"
	ogLocale = "en_US"
)

var ErrMalformedRecord = errors.New("malformed post record")

// Bundle is built once per request and never stored.
type Bundle struct {
	Title         string
	Description   string
	URL           string
	Image         string
	ImageAlt      string
	PublishedTime string
	ModifiedTime  string
	SiteName      string

	// Degraded is set when the fallback image replaced a missing one.
	Degraded bool
}

type Options struct {
	FallbackImageURL string
}

type Tag struct {
	Property string
	Content  string
}

// Build maps a record to a Bundle. A record without a featured image source
// fails with ErrMalformedRecord unless opts carries a fallback image.
func Build(record *posts.Record, host string, opts Options) (Bundle, error) {
	if record == nil {
		return Bundle{}, fmt.Errorf("%w: no record", ErrMalformedRecord)
	}

	title := posts.StrOr(record.Title, "")
	bundle := Bundle{
		Title:         title,
		Description:   strings.TrimSpace(sanitize.Excerpt(record.Excerpt)),
		URL:           posts.StrOr(record.Link, ""),
		PublishedTime: posts.StrOr(record.DateGMT, ""),
		ModifiedTime:  posts.StrOr(record.ModifiedGMT, ""),
		SiteName:      SiteName(host),
	}

	image, alt, err := featuredImage(record)
	if err != nil {
		fallback := strings.TrimSpace(opts.FallbackImageURL)
		if fallback == "" {
			return Bundle{}, err
		}
		image = fallback
		bundle.Degraded = true
	}

	bundle.Image = image
	bundle.ImageAlt = alt
	if bundle.ImageAlt == "" {
		bundle.ImageAlt = title
	}

	return bundle, nil
}

func featuredImage(record *posts.Record) (string, string, error) {
	if record.FeaturedImage == nil {
		return "", "", fmt.Errorf("%w: featuredImage is missing", ErrMalformedRecord)
	}
	node := record.FeaturedImage.Node
	if node == nil {
		return "", "", fmt.Errorf("%w: featuredImage.node is missing", ErrMalformedRecord)
	}
	if node.SourceURL == nil {
		return "", "", fmt.Errorf("%w: featuredImage.node.sourceUrl is missing", ErrMalformedRecord)
	}

	return *node.SourceURL, posts.StrOr(node.AltText, ""), nil
}

// SiteName is the part of host before the first dot.
func SiteName(host string) string {
	name, _, _ := strings.Cut(host, ".")
	return name
}

// Tags returns the preview tags in document order.
func (b Bundle) Tags() []Tag {
	return []Tag{
		{Property: "og:title", Content: b.Title},
		{Property: "og:description", Content: b.Description},
		{Property: "og:url", Content: b.URL},
		{Property: "og:type", Content: ogType},
		{Property: "og:locale", Content: ogLocale},
		{Property: "og:site_name", Content: b.SiteName},
		{Property: "article:published_time", Content: b.PublishedTime},
		{Property: "article:modified_time", Content: b.ModifiedTime},
		{Property: "og:image", Content: b.Image},
		{Property: "og:image:alt", Content: b.ImageAlt},
	}
}
