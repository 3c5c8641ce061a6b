package chunker

import (
	"fmt"
	"strings"
)

// TokenCounter measures the token length of a piece of text. The count is
// assumed to be non-decreasing as text is appended, which is what lets
// the packing below keep a running total instead of re-tokenizing.
type TokenCounter interface {
	Count(text string) int
}

// CounterFunc adapts a plain function to the TokenCounter interface.
type CounterFunc func(text string) int

func (f CounterFunc) Count(text string) int { return f(text) }

// Chunk packs sentences left to right into space-joined groups whose
// running token count stays within maxTokens. A sentence that does not
// fit on top of a non-empty group flushes the group first. A sentence
// that exceeds the budget on its own is handed to splitLongSentence and
// its parts emitted directly.
//
// Note that after an oversized sentence is split and emitted, the
// sentence is still accumulated into the pending group, so its content
// appears twice in the output. This mirrors the behavior of the
// original pipeline that produced the existing corpora; changing it
// would invalidate comparisons against them.
func Chunk(sentences []string, maxTokens int, counter TokenCounter) ([]string, error) {
	if maxTokens <= 0 {
		return nil, fmt.Errorf("max tokens must be positive, got %d", maxTokens)
	}

	var output []string
	var current []string
	chunkLen := 0

	for _, sentence := range sentences {
		seqLen := counter.Count(sentence)

		if chunkLen+seqLen > maxTokens {
			if len(current) == 0 {
				parts := splitLongSentence(sentence, maxTokens, counter)
				output = append(output, parts...)
			} else {
				output = append(output, strings.Join(current, " "))
				current = nil
				chunkLen = 0
			}
		}

		current = append(current, sentence)
		chunkLen += seqLen
	}

	if len(current) > 0 {
		output = append(output, strings.Join(current, " "))
	}

	return output, nil
}

// splitLongSentence packs the words of a single over-budget sentence
// into token-bounded parts. A word whose own token count exceeds
// maxTokens still ends up in a part of its own, over budget; there is
// no subdivision below word granularity.
func splitLongSentence(sentence string, maxTokens int, counter TokenCounter) []string {
	words := strings.Fields(sentence)

	var parts []string
	var current []string
	currentLen := 0

	for _, word := range words {
		seqLen := counter.Count(word)

		if currentLen+seqLen > maxTokens {
			parts = append(parts, strings.Join(current, " "))
			current = nil
			currentLen = 0
		}

		current = append(current, word)
		currentLen += seqLen
	}

	if len(current) > 0 {
		parts = append(parts, strings.Join(current, " "))
	}

	return parts
}
