// Package gqlfake provides an in-memory graphql.Client for tests.
package gqlfake

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/Khan/genqlient/graphql"
)

// Client answers PostByURI from a map of identifier to raw JSON post
// object. Unknown identifiers answer {"post": null}.
type Client struct {
	Posts map[string]string
	Err   error

	mu       sync.Mutex
	requests []Call
}

type Call struct {
	OpName     string
	Identifier string
}

func (c *Client) MakeRequest(_ context.Context, req *graphql.Request, resp *graphql.Response) error {
	identifier := RequestVarString(req, "id")

	c.mu.Lock()
	c.requests = append(c.requests, Call{OpName: req.OpName, Identifier: identifier})
	c.mu.Unlock()

	if c.Err != nil {
		return c.Err
	}

	switch req.OpName {
	case "PostByURI":
		post, ok := c.Posts[identifier]
		if !ok {
			return DecodeData(resp, `{"post": null}`)
		}
		return DecodeData(resp, `{"post": `+post+`}`)
	default:
		return DecodeData(resp, `{}`)
	}
}

// Calls returns the requests seen so far.
func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Call, len(c.requests))
	copy(out, c.requests)
	return out
}

func DecodeData(resp *graphql.Response, payload string) error {
	return json.Unmarshal([]byte(payload), resp.Data)
}

func RequestVarString(req *graphql.Request, key string) string {
	if req == nil || req.Variables == nil {
		return ""
	}

	raw, err := json.Marshal(req.Variables)
	if err != nil {
		return ""
	}

	values := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &values); err != nil {
		return ""
	}

	entry, ok := values[key]
	if !ok {
		return ""
	}

	var value string
	if err := json.Unmarshal(entry, &value); err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

// HelloPost is the record used by end-to-end tests: no alt text, markup in
// the excerpt.
const HelloPost = `{
	"id": "cG9zdDox",
	"excerpt": "<p>World</p>",
	"title": "Hello",
	"link": "https://example.com/2023/my-post/",
	"dateGmt": "2023-01-01T00:00:00",
	"modifiedGmt": "2023-01-02T00:00:00",
	"featuredImage": {"node": {"sourceUrl": "https://example.com/img.png", "altText": null}}
}`

// NoImagePost has no featured image edge.
const NoImagePost = `{
	"id": "cG9zdDoy",
	"excerpt": "Plain",
	"title": "No image",
	"link": "https://example.com/no-image/",
	"dateGmt": "2023-02-01T00:00:00",
	"modifiedGmt": "2023-02-01T00:00:00",
	"featuredImage": null
}`
