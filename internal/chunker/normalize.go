package chunker

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun    = regexp.MustCompile(`\s+`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:])`)
	spaceAfterPunct  = regexp.MustCompile(`([.,!?;:])\s+`)
)

// Normalize collapses whitespace and tidies spacing around punctuation.
// The transformation is idempotent. Step order matters: newlines become
// spaces before runs are collapsed, and spacing before punctuation is
// removed before spacing after it is normalized.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = spaceAfterPunct.ReplaceAllString(text, "$1 ")
	return strings.TrimSpace(text)
}
