package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"blogpreview/internal/config"
	"blogpreview/internal/posts"
	"blogpreview/internal/preview"
	"blogpreview/internal/testutil/gqlfake"
	"blogpreview/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func contentAPI(t *testing.T, queries *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if queries != nil {
			queries.Add(1)
		}
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		if !strings.Contains(string(body), `"/2023/my-post/"`) {
			_, _ = io.WriteString(w, `{"data":{"post":null}}`)
			return
		}
		_, _ = io.WriteString(w, `{"data":{"post":`+gqlfake.HelloPost+`}}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolvePrintsYAML(t *testing.T) {
	api := contentAPI(t, nil)

	out, err := execute(t, "resolve", "/2023/my-post", "--endpoint", api.URL, "--log-level", "error")
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "/2023/my-post/", got.Identifier)
	assert.Equal(t, "example.com", got.Host)
	assert.Equal(t, "Hello", got.Title)
	require.Len(t, got.Tags, 10)
	assert.Equal(t, resolvedTag{Property: "og:site_name", Content: "example"}, got.Tags[5])
	assert.Equal(t, resolvedTag{Property: "og:image:alt", Content: "Hello"}, got.Tags[9])
}

func TestResolveJSONWithHostOverride(t *testing.T) {
	api := contentAPI(t, nil)

	out, err := execute(t, "resolve", "2023/my-post", "--endpoint", api.URL, "--log-level", "error",
		"--host", "news.example.org", "-o", "json")
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "news.example.org", got.Host)
	assert.Equal(t, resolvedTag{Property: "og:site_name", Content: "news"}, got.Tags[5])
}

func TestResolveNotFound(t *testing.T) {
	api := contentAPI(t, nil)

	_, err := execute(t, "resolve", "/missing", "--endpoint", api.URL, "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no post at /missing/")
}

func TestResolveRootPathSkipsQuery(t *testing.T) {
	var queries atomic.Int32
	api := contentAPI(t, &queries)

	_, err := execute(t, "resolve", "/", "--endpoint", api.URL)
	require.Error(t, err)
	assert.Equal(t, int32(0), queries.Load())
}

func TestInspectPrintsRenderedTags(t *testing.T) {
	client := &gqlfake.Client{Posts: map[string]string{"/2023/my-post/": gqlfake.HelloPost}}
	handler, err := web.NewHandler(config.Config{}, posts.NewService(client, nil), nil, nil)
	require.NoError(t, err)
	site := httptest.NewServer(handler)
	defer site.Close()

	out, err := execute(t, "inspect", site.URL+"/2023/my-post", "-o", "json")
	require.NoError(t, err)

	var doc preview.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Hello", doc.Title)
	assert.Equal(t, "https://example.com/2023/my-post/", doc.RedirectTarget)
	title, ok := doc.Lookup("og:title")
	require.True(t, ok)
	assert.Equal(t, "Hello", title)
}

func TestWriteOutputRejectsUnknownFormat(t *testing.T) {
	err := writeOutput(io.Discard, "toml", map[string]string{})
	require.Error(t, err)
}
