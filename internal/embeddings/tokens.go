package embeddings

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultMaxTokens is the per-chunk token budget used when the model's
// advertised sequence length is missing, implausible, or the tokenizer
// could not be constructed.
const DefaultMaxTokens = 510

// Sequence lengths advertised for models we use regularly. Some model
// cards report absurdly high limits, so ResolveMaxTokens sanitizes
// whatever comes out of this table.
var modelMaxLength = map[string]int{
	"text-embedding-3-small": 8191,
	"text-embedding-3-large": 8191,
	"text-embedding-ada-002": 8191,
}

// TikTokenCounter counts tokens with the tiktoken encoding for a model.
type TikTokenCounter struct {
	tke *tiktoken.Tiktoken
}

// NewTokenCounter returns a counter for the model's tokenizer, falling
// back to cl100k_base for models tiktoken does not know. The boolean
// reports whether any real encoding could be constructed; when false the
// returned counter approximates tokens by whitespace-delimited words and
// callers should fall back to DefaultMaxTokens.
func NewTokenCounter(model string) (func(text string) int, bool) {
	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		tke, err = tiktoken.GetEncoding("cl100k_base")
	}
	if err != nil {
		return func(text string) int { return len(strings.Fields(text)) }, false
	}
	c := &TikTokenCounter{tke: tke}
	return c.Count, true
}

// Count returns the number of tokens in the text.
func (c *TikTokenCounter) Count(text string) int {
	return len(c.tke.Encode(text, nil, nil))
}

// ResolveMaxTokens determines the per-chunk token budget for a model.
// Advertised sequence lengths above 9000 are treated as unset; a failed
// tokenizer probe also resolves to the default.
func ResolveMaxTokens(model string, probeOK bool) int {
	if !probeOK {
		return DefaultMaxTokens
	}
	maxLength, ok := modelMaxLength[model]
	if !ok || maxLength <= 0 || maxLength > 9000 {
		return DefaultMaxTokens
	}
	return maxLength
}
