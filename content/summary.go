package content

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every tag.
var strictPolicy = bluemonday.StrictPolicy()

// blockTag matches tags that separate words once markup is removed.
var blockTag = regexp.MustCompile(`(?i)<(/?)(p|div|br|h[1-6]|li|ul|ol|dl|dt|dd|blockquote|pre|table|tr|td|th|hr|section|article)\b`)

// Summary returns the plain text of rendered HTML cut to at most words
// words, ending in an ellipsis when text was dropped. A non-positive
// words keeps everything.
func Summary(rendered []byte, words int) string {
	spaced := blockTag.ReplaceAllString(string(rendered), " <$1$2")
	text := html.UnescapeString(strictPolicy.Sanitize(spaced))
	fields := strings.Fields(text)
	if words <= 0 || len(fields) <= words {
		return strings.Join(fields, " ")
	}
	return strings.Join(fields[:words], " ") + "…"
}
