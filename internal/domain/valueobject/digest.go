package valueobject

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashLower computes the privacy-preserving digest used for PII fields sent
// to the advertising platform: trim whitespace, lowercase, SHA-256, lowercase
// hex. Empty or whitespace-only input yields the empty string so callers can
// omit the identifier entirely.
func HashLower(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
