// Package sanitize turns markup-bearing excerpt text into plain text.
package sanitize

import (
	"fmt"
	"regexp"
)

var (
	tagPattern       = regexp.MustCompile(`(?i)<[^>]+>`)
	shortcodePattern = regexp.MustCompile(`\[[^\]]*\]`)
)

// Excerpt removes every tag and the first bracketed shortcode from value.
// Nil and empty values yield "". The result is not trimmed.
//
// Only one shortcode is removed per call; later ones are kept as text.
func Excerpt(value any) string {
	text := toString(value)
	if text == "" {
		return ""
	}

	text = tagPattern.ReplaceAllString(text, "")
	return replaceFirst(shortcodePattern, text, "")
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func replaceFirst(pattern *regexp.Regexp, text string, replacement string) string {
	loc := pattern.FindStringIndex(text)
	if loc == nil {
		return text
	}

	return text[:loc[0]] + replacement + text[loc[1]:]
}
