package sanitize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExcerptEmptyInputs(t *testing.T) {
	var nilString *string
	empty := ""

	assert.Equal(t, "", Excerpt(nil))
	assert.Equal(t, "", Excerpt(""))
	assert.Equal(t, "", Excerpt(nilString))
	assert.Equal(t, "", Excerpt(&empty))
}

func TestExcerptStripsTagsAndFirstShortcodeOnly(t *testing.T) {
	got := Excerpt("<b>Hi</b> [shortcode] [second]")

	assert.Equal(t, "Hi  [second]", got)
}

func TestExcerptStripsTagsCaseInsensitively(t *testing.T) {
	got := Excerpt(`<P CLASS="lead">Hello <A HREF="/x">there</A></P>`)

	assert.Equal(t, "Hello there", got)
}

func TestExcerptKeepsEmptyAngleBrackets(t *testing.T) {
	assert.Equal(t, "a <> b", Excerpt("a <> b"))
}

func TestExcerptRemovesEmptyShortcode(t *testing.T) {
	assert.Equal(t, "before after", Excerpt("before []after"))
}

func TestExcerptDoesNotTrim(t *testing.T) {
	assert.Equal(t, "\nWorld\n", Excerpt("<p>\nWorld\n</p>"))
}

func TestExcerptReadsStringPointer(t *testing.T) {
	value := "<p>World</p>"

	assert.Equal(t, "World", Excerpt(&value))
}

func TestExcerptCoercesNonStringScalars(t *testing.T) {
	assert.Equal(t, "42", Excerpt(42))
	assert.Equal(t, "true", Excerpt(true))
	assert.Equal(t, "1.5", Excerpt(1.5))
	assert.Equal(t, "1h0m0s", Excerpt(time.Hour))
	assert.Equal(t, "raw", Excerpt([]byte("<i>raw</i>")))
}

func TestExcerptLeavesTextWithoutMarkup(t *testing.T) {
	assert.Equal(t, "plain & simple", Excerpt("plain & simple"))
}

type label struct{ text string }

func (l *label) String() string { return l.text }

func TestExcerptCoercesStringers(t *testing.T) {
	assert.Equal(t, "Hi", Excerpt(&label{text: "<em>Hi</em>"}))

	var missing *label
	assert.NotPanics(t, func() { Excerpt(missing) })
	assert.Equal(t, "", Excerpt(missing))
}
