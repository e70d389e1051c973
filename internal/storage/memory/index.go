package memory

import (
	"sync"

	"github.com/yndnr/mergington-go/pkg/cmap"
)

// SessionSet is a concurrent-safe set of token hashes.
type SessionSet struct {
	mu    sync.RWMutex
	items map[string]struct{}
}

// NewSessionSet creates a new session set.
func NewSessionSet() *SessionSet {
	return &SessionSet{
		items: make(map[string]struct{}),
	}
}

// Add adds a key to the set.
func (s *SessionSet) Add(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = struct{}{}
}

// Remove removes a key from the set.
func (s *SessionSet) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

// Contains checks if a key is in the set.
func (s *SessionSet) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[key]
	return ok
}

// Len returns the number of items in the set.
func (s *SessionSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns a copy of all keys.
func (s *SessionSet) Items() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]string, 0, len(s.items))
	for k := range s.items {
		items = append(items, k)
	}
	return items
}

// UserIndex maps a teacher username to the token hashes of their sessions.
type UserIndex struct {
	index *cmap.Map[*SessionSet]
}

// NewUserIndex creates a new user index.
func NewUserIndex() *UserIndex {
	return &UserIndex{
		index: cmap.New[*SessionSet](),
	}
}

// Add records tokenHash under username.
func (i *UserIndex) Add(username, tokenHash string) {
	_ = i.index.Compute(username, func(set *SessionSet, ok bool) (*SessionSet, error) {
		if !ok {
			set = NewSessionSet()
		}
		set.Add(tokenHash)
		return set, nil
	})
}

// Remove drops tokenHash from username's set, deleting the set when empty.
func (i *UserIndex) Remove(username, tokenHash string) {
	set, ok := i.index.Get(username)
	if !ok {
		return
	}

	set.Remove(tokenHash)
	if set.Len() == 0 {
		i.index.Delete(username)
	}
}

// Get returns all token hashes for a username.
func (i *UserIndex) Get(username string) []string {
	set, ok := i.index.Get(username)
	if !ok {
		return nil
	}
	return set.Items()
}

// Clear removes every entry for a username.
func (i *UserIndex) Clear(username string) {
	i.index.Delete(username)
}
