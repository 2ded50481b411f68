package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// TokenBytes is the entropy of a session token.
// 16 bytes = 128 bits, hex-encoded to 32 characters.
const TokenBytes = 16

// NewSessionToken returns a cryptographically random opaque session token.
// Tokens identify sessions by exact lookup; they carry no claims and no
// signature, so possession of the string is the whole credential.
func NewSessionToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
