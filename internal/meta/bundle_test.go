package meta

import (
	"testing"

	"blogpreview/internal/posts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(value string) *string {
	return &value
}

func helloRecord() *posts.Record {
	return &posts.Record{
		ID:          "cG9zdDox",
		Excerpt:     ptr("<p>World</p>"),
		Title:       ptr("Hello"),
		Link:        ptr("https://example.com/2023/my-post/"),
		DateGMT:     ptr("2023-01-01T00:00:00"),
		ModifiedGMT: ptr("2023-01-02T00:00:00"),
		FeaturedImage: &posts.FeaturedImage{
			Node: &posts.Image{SourceURL: ptr("https://example.com/img.png")},
		},
	}
}

func TestBuildMapsRecord(t *testing.T) {
	bundle, err := Build(helloRecord(), "example.com", Options{})
	require.NoError(t, err)

	assert.Equal(t, Bundle{
		Title:         "Hello",
		Description:   "World",
		URL:           "https://example.com/2023/my-post/",
		Image:         "https://example.com/img.png",
		ImageAlt:      "Hello",
		PublishedTime: "2023-01-01T00:00:00",
		ModifiedTime:  "2023-01-02T00:00:00",
		SiteName:      "example",
	}, bundle)
}

func TestBuildKeepsAltTextAndRawTitle(t *testing.T) {
	record := helloRecord()
	record.Title = ptr("Tom & <Jerry>")
	record.FeaturedImage.Node.AltText = ptr("A cat")
	record.Excerpt = ptr("  <b>Hi</b> [caption id=1] [second]  ")

	bundle, err := Build(record, "blog.example.com", Options{})
	require.NoError(t, err)

	assert.Equal(t, "Tom & <Jerry>", bundle.Title)
	assert.Equal(t, "A cat", bundle.ImageAlt)
	assert.Equal(t, "Hi  [second]", bundle.Description)
	assert.Equal(t, "blog", bundle.SiteName)
}

func TestBuildEmptyAltFallsBackToTitle(t *testing.T) {
	record := helloRecord()
	record.FeaturedImage.Node.AltText = ptr("")

	bundle, err := Build(record, "example.com", Options{})
	require.NoError(t, err)
	assert.Equal(t, "Hello", bundle.ImageAlt)
}

func TestBuildNilExcerptYieldsEmptyDescription(t *testing.T) {
	record := helloRecord()
	record.Excerpt = nil

	bundle, err := Build(record, "example.com", Options{})
	require.NoError(t, err)
	assert.Equal(t, "", bundle.Description)
}

func TestBuildMalformedRecord(t *testing.T) {
	noEdge := helloRecord()
	noEdge.FeaturedImage = nil

	noNode := helloRecord()
	noNode.FeaturedImage.Node = nil

	noSource := helloRecord()
	noSource.FeaturedImage.Node.SourceURL = nil

	cases := map[string]*posts.Record{
		"featuredImage is missing":                noEdge,
		"featuredImage.node is missing":           noNode,
		"featuredImage.node.sourceUrl is missing": noSource,
		"no record": nil,
	}

	for expected, record := range cases {
		_, err := Build(record, "example.com", Options{})
		require.ErrorIs(t, err, ErrMalformedRecord, expected)
		assert.Contains(t, err.Error(), expected)
	}
}

func TestBuildKeepsEmptySourceURL(t *testing.T) {
	record := helloRecord()
	empty := ""
	record.FeaturedImage.Node.SourceURL = &empty

	bundle, err := Build(record, "example.com", Options{FallbackImageURL: "https://cdn.example.com/og.png"})
	require.NoError(t, err)

	assert.False(t, bundle.Degraded)
	assert.Equal(t, "", bundle.Image)
}

func TestBuildFallbackImage(t *testing.T) {
	record := helloRecord()
	record.FeaturedImage = nil

	bundle, err := Build(record, "example.com", Options{FallbackImageURL: "https://cdn.example.com/og.png"})
	require.NoError(t, err)

	assert.True(t, bundle.Degraded)
	assert.Equal(t, "https://cdn.example.com/og.png", bundle.Image)
	assert.Equal(t, "Hello", bundle.ImageAlt)
}

func TestSiteName(t *testing.T) {
	cases := map[string]string{
		"example.com":       "example",
		"www.example.co.uk": "www",
		"localhost:3000":    "localhost:3000",
		"":                  "",
	}

	for host, expected := range cases {
		assert.Equal(t, expected, SiteName(host), "host %q", host)
	}
}

func TestTagsOrder(t *testing.T) {
	bundle, err := Build(helloRecord(), "example.com", Options{})
	require.NoError(t, err)

	properties := make([]string, 0, 10)
	for _, tag := range bundle.Tags() {
		properties = append(properties, tag.Property)
	}

	assert.Equal(t, []string{
		"og:title",
		"og:description",
		"og:url",
		"og:type",
		"og:locale",
		"og:site_name",
		"article:published_time",
		"article:modified_time",
		"og:image",
		"og:image:alt",
	}, properties)
	assert.Equal(t, Tag{Property: "og:type", Content: "article"}, bundle.Tags()[3])
	assert.Equal(t, Tag{Property: "og:locale", Content: "en_US"}, bundle.Tags()[4])
}
