// Package token generates the random remember tokens handed to clients.
// Only a digest of a token is ever persisted.
package token

import (
	"crypto/rand"
	"encoding/base64"
)

// tokenBytes is the entropy per token; 16 bytes keeps the collision
// probability negligible while staying well under bcrypt's input limit.
const tokenBytes = 16

// New returns a fresh, URL-safe random token. The value is unpadded
// base64url, 22 characters for 16 bytes of entropy.
func New() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
