package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// SessionIDPrefix is the prefix for session IDs.
const SessionIDPrefix = "mhss-"

// Session is a server-held association between a bearer token and a teacher.
//
// Only the token hash is kept; the plaintext token leaves the server once,
// in the login response.
type Session struct {
	// ID is the unique identifier for the session.
	// Format: mhss-{ulid_lowercase}, 31 characters total.
	ID string `json:"id"`

	// TokenHash is the SHA-256 hash of the bearer token.
	// Format: mhth_{hex_sha256}, 69 characters total.
	TokenHash string `json:"token_hash"`

	// Username of the owning teacher.
	Username string `json:"username"`

	// Name is the teacher's display name, captured at login.
	Name string `json:"name"`

	ClientIP  string `json:"client_ip"`
	UserAgent string `json:"user_agent"`

	// CreatedAt is the session creation timestamp (Unix milliseconds).
	CreatedAt int64 `json:"created_at"`
}

// NewSession creates a session for teacher bound to tokenHash.
func NewSession(tokenHash string, teacher Teacher) (*Session, error) {
	id, err := GenerateSessionID()
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        id,
		TokenHash: tokenHash,
		Username:  teacher.Username,
		Name:      teacher.Name,
		CreatedAt: time.Now().UnixMilli(),
	}, nil
}

// GenerateSessionID generates a new session ID using ULID.
// Format: mhss-{ulid_lowercase}, 31 characters total.
func GenerateSessionID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", ErrInternalServer.WithCause(err)
	}
	return SessionIDPrefix + strings.ToLower(id.String()), nil
}

// Clone returns a copy of the session.
func (s *Session) Clone() *Session {
	clone := *s
	return &clone
}
