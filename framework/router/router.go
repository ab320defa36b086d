package router

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
)

var dynamicSegmentNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

type segmentKind int

const (
	staticSegment segmentKind = iota
	catchAllSegment
)

type pathSegment struct {
	name string
	kind segmentKind
}

// Route is a compiled pattern such as "/healthz" or "/[...postpath]".
// A catch-all segment must be last and matches one or more path segments.
type Route struct {
	pattern     string
	segments    []pathSegment
	staticCount int
	patternKey  string
}

type Match struct {
	Pattern  string
	CatchAll map[string][]string
}

func (m Match) Segments(name string) ([]string, bool) {
	if m.CatchAll == nil {
		return nil, false
	}

	value, ok := m.CatchAll[name]
	return value, ok
}

type Router struct {
	routes []*Route
}

func New(patterns ...string) (*Router, error) {
	if len(patterns) == 0 {
		return nil, errors.New("router needs at least one pattern")
	}

	routes := make([]*Route, 0, len(patterns))
	seenPattern := make(map[string]string, len(patterns))
	for _, pattern := range patterns {
		route, err := Compile(pattern)
		if err != nil {
			return nil, err
		}

		if existing, ok := seenPattern[route.patternKey]; ok {
			return nil, fmt.Errorf("route pattern conflict: %q and %q", existing, route.pattern)
		}
		seenPattern[route.patternKey] = route.pattern
		routes = append(routes, route)
	}

	sort.SliceStable(routes, func(i int, j int) bool {
		left := routes[i]
		right := routes[j]

		if left.hasCatchAll() != right.hasCatchAll() {
			return !left.hasCatchAll()
		}
		if left.staticCount != right.staticCount {
			return left.staticCount > right.staticCount
		}
		if len(left.segments) != len(right.segments) {
			return len(left.segments) > len(right.segments)
		}
		return left.pattern < right.pattern
	})

	return &Router{routes: routes}, nil
}

func (router *Router) Match(requestPath string) (Match, bool) {
	requestSegments := SplitPath(requestPath)
	for _, route := range router.routes {
		if match, ok := route.match(requestSegments); ok {
			return match, true
		}
	}

	return Match{}, false
}

func Compile(pattern string) (*Route, error) {
	cleaned := strings.TrimSpace(pattern)
	if cleaned == "" {
		return nil, errors.New("route pattern cannot be empty")
	}

	parts := SplitPath(cleaned)
	segments := make([]pathSegment, 0, len(parts))
	keyParts := make([]string, 0, len(parts))
	staticCount := 0

	for idx, part := range parts {
		segment, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("route pattern %q: %w", pattern, err)
		}
		if segment.kind == catchAllSegment && idx != len(parts)-1 {
			return nil, fmt.Errorf("route pattern %q: catch-all segment must be last", pattern)
		}

		segments = append(segments, segment)
		if segment.kind == catchAllSegment {
			keyParts = append(keyParts, "*")
			continue
		}
		keyParts = append(keyParts, segment.name)
		staticCount++
	}

	return &Route{
		pattern:     "/" + strings.Join(parts, "/"),
		segments:    segments,
		staticCount: staticCount,
		patternKey:  "/" + strings.Join(keyParts, "/"),
	}, nil
}

func (route *Route) Match(requestPath string) (Match, bool) {
	return route.match(SplitPath(requestPath))
}

func (route *Route) hasCatchAll() bool {
	return len(route.segments) > 0 && route.segments[len(route.segments)-1].kind == catchAllSegment
}

func (route *Route) match(requestSegments []string) (Match, bool) {
	if route.hasCatchAll() {
		if len(requestSegments) < len(route.segments) {
			return Match{}, false
		}
	} else if len(route.segments) != len(requestSegments) {
		return Match{}, false
	}

	match := Match{Pattern: route.pattern}
	for idx, segment := range route.segments {
		requestValue := requestSegments[idx]
		switch segment.kind {
		case staticSegment:
			if segment.name != requestValue {
				return Match{}, false
			}
		case catchAllSegment:
			rest := make([]string, len(requestSegments)-idx)
			copy(rest, requestSegments[idx:])
			match.CatchAll = map[string][]string{segment.name: rest}
		}
	}

	return match, true
}

func parseSegment(segment string) (pathSegment, error) {
	if strings.HasPrefix(segment, "[") || strings.HasSuffix(segment, "]") {
		if !strings.HasPrefix(segment, "[") || !strings.HasSuffix(segment, "]") {
			return pathSegment{}, fmt.Errorf("invalid wildcard segment %q", segment)
		}

		inner, ok := strings.CutPrefix(strings.TrimSpace(segment[1:len(segment)-1]), "...")
		if !ok {
			return pathSegment{}, fmt.Errorf("wildcard segment %q must be a catch-all ([...name])", segment)
		}
		inner = strings.TrimSpace(inner)
		if !dynamicSegmentNamePattern.MatchString(inner) {
			return pathSegment{}, fmt.Errorf("invalid wildcard name %q", inner)
		}

		return pathSegment{name: inner, kind: catchAllSegment}, nil
	}

	if strings.ContainsAny(segment, "[]") {
		return pathSegment{}, fmt.Errorf("invalid static segment %q", segment)
	}

	return pathSegment{name: segment, kind: staticSegment}, nil
}

// SplitPath returns the non-empty segments of a cleaned URL path in order.
func SplitPath(raw string) []string {
	cleaned := path.Clean("/" + strings.TrimSpace(raw))
	if cleaned == "/" {
		return []string{}
	}

	trimmed := strings.Trim(cleaned, "/")
	if trimmed == "" {
		return []string{}
	}

	return strings.Split(trimmed, "/")
}
