package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// stripCodeFences removes a leading/trailing markdown code fence from an
// LLM reply. Input without fences passes through unchanged, so the
// operation is idempotent.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}

// truncate bounds s to at most n bytes for error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// cacheKey identifies an extraction request by prompt and user text.
func cacheKey(prompt, text string) string {
	h := sha256.New()
	h.Write([]byte(prompt))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
