package chunker

import (
	"regexp"
	"strings"
)

// A sentence is any span of text up to and including its first terminal
// punctuation mark. Abbreviations, decimals and quoted punctuation are
// not handled; splitting is intentionally naive.
var sentencePattern = regexp.MustCompile(`[^.!?]*[.!?]`)

// SplitSentences segments normalized text into sentences on `.`, `!`
// and `?`. Matches are trimmed and empty results dropped. Trailing text
// with no terminal punctuation is not returned.
func SplitSentences(text string) []string {
	matches := sentencePattern.FindAllString(text, -1)
	var sentences []string
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		sentences = append(sentences, m)
	}
	return sentences
}
