package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Sign computes the base64-encoded HMAC-SHA256 digest of body using secret.
// It matches the digest Shopify places in the webhook signature header.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify reports whether headerDigest matches the HMAC-SHA256 digest of the
// raw, unparsed body. Verification must happen before any JSON decoding:
// re-serialized bytes would not reproduce the digest. The comparison is
// constant-time. An empty header or empty secret always fails.
func Verify(body []byte, headerDigest, secret string) bool {
	if headerDigest == "" || secret == "" {
		return false
	}
	expected := Sign(body, secret)
	return hmac.Equal([]byte(expected), []byte(headerDigest))
}
