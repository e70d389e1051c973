// Package token provides random token generation and hashing primitives.
//
// Tokens are read from crypto/rand and encoded as unpadded base64url so they
// can travel in headers and query strings. Hashes are hex SHA-256; all
// comparisons run in constant time.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

// DefaultLength is the default number of random bytes in a token.
const DefaultLength = 32

// Generate returns a random token of DefaultLength bytes.
func Generate() (string, error) {
	return GenerateWithLength(DefaultLength)
}

// GenerateWithLength returns a base64url token built from length random bytes.
func GenerateWithLength(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Hash returns the hex SHA-256 digest of s.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Equal compares two strings in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
