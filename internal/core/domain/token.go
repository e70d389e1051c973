package domain

import (
	"encoding/base64"
	"strings"

	"github.com/yndnr/mergington-go/pkg/token"
)

const (
	// TokenPrefix is the prefix for bearer tokens.
	TokenPrefix = "mhtk_"

	// TokenHashPrefix is the prefix for stored token hashes.
	TokenHashPrefix = "mhth_"

	// TokenBodyLength is the encoded length of 32 random bytes (base64url, no padding).
	TokenBodyLength = 43

	// TokenLength is the total token length (prefix + body).
	TokenLength = len(TokenPrefix) + TokenBodyLength

	// TokenHashLength is the total hash length (prefix + hex SHA-256).
	TokenHashLength = len(TokenHashPrefix) + 64
)

// GenerateToken generates a bearer token and its hash.
//
// The plaintext must only be handed to the client; store the hash.
func GenerateToken() (plaintext string, hash string, err error) {
	body, err := token.Generate()
	if err != nil {
		return "", "", ErrInternalServer.WithCause(err)
	}
	plaintext = TokenPrefix + body
	return plaintext, HashToken(plaintext), nil
}

// HashToken returns the registry key for a token: mhth_{hex_sha256}.
func HashToken(plaintext string) string {
	return TokenHashPrefix + token.Hash(plaintext)
}

// ValidateTokenFormat reports whether s looks like a token issued by
// GenerateToken. It does not say whether the token is live.
func ValidateTokenFormat(s string) bool {
	if len(s) != TokenLength || !strings.HasPrefix(s, TokenPrefix) {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(s[len(TokenPrefix):])
	return err == nil
}
