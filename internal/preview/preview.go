// Package preview reads link preview metadata back out of a rendered page,
// the way a social crawler would.
package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent         = "Mozilla/5.0 (compatible; blogpreview-inspect/1.0)"
	redirectTargetSel = "script#post-redirect-target"
)

type Tag struct {
	Property string `json:"property" yaml:"property"`
	Content  string `json:"content" yaml:"content"`
}

type Document struct {
	Title          string `json:"title" yaml:"title"`
	Tags           []Tag  `json:"tags" yaml:"tags"`
	RedirectTarget string `json:"redirectTarget,omitempty" yaml:"redirectTarget,omitempty"`
}

// Lookup returns the content of the first tag with property.
func (d Document) Lookup(property string) (string, bool) {
	for _, tag := range d.Tags {
		if tag.Property == property {
			return tag.Content, true
		}
	}
	return "", false
}

// Parse extracts og:* and article:* tags in document order, the title and
// the embedded redirect target.
func Parse(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Document{}, fmt.Errorf("parse html: %w", err)
	}

	out := Document{
		Title: strings.TrimSpace(doc.Find("head title").First().Text()),
	}

	doc.Find("meta[property]").Each(func(_ int, s *goquery.Selection) {
		property, _ := s.Attr("property")
		if !strings.HasPrefix(property, "og:") && !strings.HasPrefix(property, "article:") {
			return
		}
		content, _ := s.Attr("content")
		out.Tags = append(out.Tags, Tag{Property: property, Content: content})
	})

	if payload := strings.TrimSpace(doc.Find(redirectTargetSel).First().Text()); payload != "" {
		if err := json.Unmarshal([]byte(payload), &out.RedirectTarget); err != nil {
			return Document{}, fmt.Errorf("decode redirect target: %w", err)
		}
	}

	return out, nil
}

// Fetch GETs pageURL and parses the response. Any status other than 200 is
// an error.
func Fetch(ctx context.Context, client *http.Client, pageURL string) (Document, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return Document{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Document{}, fmt.Errorf("fetch %s: unexpected status code %d", pageURL, resp.StatusCode)
	}

	return Parse(resp.Body)
}
