package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateToken returns 32 random bytes encoded as unpadded base64url.
// Collisions are not retried: at 256 bits the birthday bound is far beyond
// any number of live sessions.
func GenerateToken() (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("session: read random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b[:]), nil
}

// shortToken trims a token for log output.
func shortToken(token string) string {
	if len(token) <= 6 {
		return token
	}
	return token[:6] + "..."
}
