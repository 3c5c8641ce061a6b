package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
)

// hashPrompt returns a short stable fingerprint of a prefix prompt.
func hashPrompt(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])[:8]
}

// OutputPath derives the dataset directory for a (model, prefix) pair.
// Identical inputs always resolve to the same location. Slashes in the
// model name are flattened so the name stays a single path element; the
// prefix contributes either an explicit label or an 8-character hash.
func OutputPath(baseDir, model, prefix, label string) string {
	name := "emb__" + strings.ReplaceAll(model, "/", "__")
	if prefix != "" {
		if label != "" {
			name += "_" + label
		} else {
			name += "_" + hashPrompt(prefix)
		}
	}
	return filepath.Join(baseDir, name)
}
