package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogpreview/internal/config"
	"blogpreview/internal/posts"
	"blogpreview/internal/testutil/gqlfake"
	"blogpreview/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!doctype html>
<html><head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width">
<meta property="og:title" content="A &amp; B">
<meta property="fb:app_id" content="123">
<meta property="article:published_time" content="2023-01-01T00:00:00">
<title> A &amp; B </title>
</head><body>
<script id="post-redirect-target" type="application/json">"https://example.com/a-b/"</script>
</body></html>`

func TestParseKeepsPreviewTagsInOrder(t *testing.T) {
	doc, err := Parse(strings.NewReader(samplePage))
	require.NoError(t, err)

	assert.Equal(t, "A & B", doc.Title)
	assert.Equal(t, []Tag{
		{Property: "og:title", Content: "A & B"},
		{Property: "article:published_time", Content: "2023-01-01T00:00:00"},
	}, doc.Tags)
	assert.Equal(t, "https://example.com/a-b/", doc.RedirectTarget)

	_, ok := doc.Lookup("fb:app_id")
	assert.False(t, ok)
}

func TestParseRejectsBrokenRedirectPayload(t *testing.T) {
	_, err := Parse(strings.NewReader(`<html><body><script id="post-redirect-target" type="application/json">{</script></body></html>`))
	require.Error(t, err)
}

func TestParseWithoutTags(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<html><head><title>404 Not Found</title></head></html>`))
	require.NoError(t, err)
	assert.Empty(t, doc.Tags)
	assert.Empty(t, doc.RedirectTarget)
}

func TestFetchRenderedPostPage(t *testing.T) {
	client := &gqlfake.Client{Posts: map[string]string{"/2023/my-post/": gqlfake.HelloPost}}
	handler, err := web.NewHandler(config.Config{}, posts.NewService(client, nil), nil, nil)
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	defer server.Close()

	doc, err := Fetch(context.Background(), server.Client(), server.URL+"/2023/my-post")
	require.NoError(t, err)

	assert.Equal(t, "Hello", doc.Title)
	assert.Equal(t, "https://example.com/2023/my-post/", doc.RedirectTarget)
	require.Len(t, doc.Tags, 10)
	assert.Equal(t, "og:title", doc.Tags[0].Property)
	assert.Equal(t, "og:image:alt", doc.Tags[9].Property)

	description, ok := doc.Lookup("og:description")
	require.True(t, ok)
	assert.Equal(t, "World", description)

	// httptest listens on 127.0.0.1:port
	siteName, _ := doc.Lookup("og:site_name")
	assert.Equal(t, "127", siteName)
}

func TestFetchNotFoundIsError(t *testing.T) {
	handler, err := web.NewHandler(config.Config{}, posts.NewService(&gqlfake.Client{}, nil), nil, nil)
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	defer server.Close()

	_, err = Fetch(context.Background(), server.Client(), server.URL+"/nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchUsesUserAgent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), nil, server.URL)
	require.NoError(t, err)
	assert.Equal(t, userAgent, got)
}
