package memory

import (
	"context"
	"sync"

	"github.com/yndnr/mergington-go/internal/core/domain"
	"github.com/yndnr/mergington-go/pkg/cmap"
)

// SessionStore provides in-memory session storage keyed by token hash.
type SessionStore struct {
	// Primary index: TokenHash -> Session
	sessions *cmap.Map[*domain.Session]

	// Secondary index: Username -> set of TokenHashes
	userIndex *UserIndex

	// Serializes operations that touch both indexes.
	mu sync.Mutex
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions:  cmap.New[*domain.Session](),
		userIndex: NewUserIndex(),
	}
}

// Create stores a new session.
func (s *SessionStore) Create(_ context.Context, session *domain.Session) error {
	if session.TokenHash == "" || session.Username == "" {
		return domain.ErrMissingArgument.WithDetails("session requires token hash and username")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sessions.SetIfAbsent(session.TokenHash, session.Clone()) {
		return domain.ErrTokenHashConflict
	}
	s.userIndex.Add(session.Username, session.TokenHash)

	return nil
}

// GetByToken retrieves a session by token hash.
func (s *SessionStore) GetByToken(_ context.Context, tokenHash string) (*domain.Session, error) {
	session, ok := s.sessions.Get(tokenHash)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session.Clone(), nil
}

// DeleteByToken removes a session and returns it.
func (s *SessionStore) DeleteByToken(_ context.Context, tokenHash string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Pop(tokenHash)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	s.userIndex.Remove(session.Username, tokenHash)

	return session, nil
}

// DeleteByUsername removes every session of a teacher and returns how many
// were removed.
func (s *SessionStore) DeleteByUsername(_ context.Context, username string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for _, hash := range s.userIndex.Get(username) {
		if _, ok := s.sessions.Pop(hash); ok {
			deleted++
		}
	}
	s.userIndex.Clear(username)

	return deleted, nil
}

// Count returns the number of live sessions.
func (s *SessionStore) Count() int {
	return s.sessions.Count()
}
