package analyzer

import (
	"regexp"
	"strings"
)

var (
	urlPattern    = regexp.MustCompile(`(?i)https?://(?:[a-zA-Z0-9$-_@.&+]|[!*(),]|%[0-9a-fA-F]{2})+`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hashtagWord   = regexp.MustCompile(`#+(\w+)`)
)

// Normalize prepares raw post text for matching: lowercase, strip http/https
// URLs, collapse all whitespace runs to a single space, unwrap hashtags
// (keeping the tag word), and trim. Total over any input, including empty and
// non-ASCII strings, and idempotent: normalized text is a fixed point.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = hashtagWord.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
