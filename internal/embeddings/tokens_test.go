package embeddings

import "testing"

func TestResolveMaxTokens(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		probeOK  bool
		expected int
	}{
		{"known model", "text-embedding-3-small", true, 8191},
		{"unknown model falls back", "some/unheard-of-model", true, DefaultMaxTokens},
		{"failed probe overrides known model", "text-embedding-3-small", false, DefaultMaxTokens},
		{"failed probe unknown model", "mystery", false, DefaultMaxTokens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMaxTokens(tt.model, tt.probeOK)
			if got != tt.expected {
				t.Errorf("ResolveMaxTokens(%q, %v) = %d, want %d", tt.model, tt.probeOK, got, tt.expected)
			}
		})
	}
}

func TestResolveMaxTokensSanitizesHighLimits(t *testing.T) {
	// Model cards sometimes advertise effectively unbounded lengths.
	modelMaxLength["test-huge-limit"] = 1000000000
	defer delete(modelMaxLength, "test-huge-limit")

	if got := ResolveMaxTokens("test-huge-limit", true); got != DefaultMaxTokens {
		t.Errorf("expected sanitized default %d, got %d", DefaultMaxTokens, got)
	}
}
