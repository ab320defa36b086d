package posts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blogpreview/internal/gql"
	genqlientgraphql "github.com/Khan/genqlient/graphql"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("post not found")

type Service struct {
	client genqlientgraphql.Client
	log    *zap.Logger
}

// Image is the featured image node of a post.
type Image struct {
	SourceURL *string
	AltText   *string
}

// Record is a read-only copy of one upstream post. Nullable upstream fields
// stay nil; callers decide what absence means.
type Record struct {
	ID            string
	Excerpt       *string
	Title         *string
	Link          *string
	DateGMT       *string
	ModifiedGMT   *string
	FeaturedImage *FeaturedImage
}

// FeaturedImage mirrors the upstream edge so that a present edge with a
// missing node stays distinguishable from a missing edge.
type FeaturedImage struct {
	Node *Image
}

func NewService(client genqlientgraphql.Client, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		client: client,
		log:    log.Named("posts"),
	}
}

// Identifier joins path segments into the URI form the content API expects.
func Identifier(segments []string) string {
	return "/" + strings.Join(segments, "/") + "/"
}

// Resolve issues a single PostByURI query. It returns ErrNotFound when the
// API answers with no post; transport errors are returned wrapped.
func (s *Service) Resolve(ctx context.Context, segments []string) (*Record, error) {
	identifier := Identifier(segments)
	s.log.Info("resolving post", zap.String("identifier", identifier))

	response, err := gql.PostByURI(ctx, s.client, identifier)
	if err != nil {
		return nil, fmt.Errorf("query post %q: %w", identifier, err)
	}

	if response == nil || response.Post == nil {
		return nil, ErrNotFound
	}

	return mapRecord(response.Post), nil
}

func mapRecord(post *gql.PostByURIPost) *Record {
	record := &Record{
		ID:          post.Id,
		Excerpt:     post.Excerpt,
		Title:       post.Title,
		Link:        post.Link,
		DateGMT:     post.DateGmt,
		ModifiedGMT: post.ModifiedGmt,
	}

	if post.FeaturedImage != nil {
		record.FeaturedImage = &FeaturedImage{}
		if node := post.FeaturedImage.Node; node != nil {
			record.FeaturedImage.Node = &Image{
				SourceURL: node.SourceUrl,
				AltText:   node.AltText,
			}
		}
	}

	return record
}

func StrOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}

	return *value
}
