package web

import (
	"reflect"
	"testing"
)

func TestPostSegments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path     string
		segments []string
		ok       bool
	}{
		{path: "/2023/my-post", segments: []string{"2023", "my-post"}, ok: true},
		{path: "/2023/my-post/", segments: []string{"2023", "my-post"}, ok: true},
		{path: "a//b", segments: []string{"a", "b"}, ok: true},
		{path: "/", ok: false},
		{path: "", ok: false},
	}

	for _, tc := range cases {
		segments, ok := PostSegments(tc.path)
		if ok != tc.ok {
			t.Fatalf("%q: expected ok=%v, got %v", tc.path, tc.ok, ok)
		}
		if !reflect.DeepEqual(segments, tc.segments) {
			t.Fatalf("%q: expected %v, got %v", tc.path, tc.segments, segments)
		}
	}
}
