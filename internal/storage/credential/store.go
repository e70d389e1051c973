// Package credential provides the teacher credential store.
//
// Teachers are read from a JSON document of the form
//
//	{"teachers": [{"username": "...", "password": "...", "name": "..."}]}
//
// A missing file is an empty store. The store can be reloaded at runtime;
// a reload that fails keeps the previous set.
package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/yndnr/mergington-go/internal/core/domain"
	"github.com/yndnr/mergington-go/internal/infra/confloader"
	"github.com/yndnr/mergington-go/pkg/token"
)

// document is the on-disk shape of the credential file.
type document struct {
	Teachers []domain.Teacher `json:"teachers"`
}

// FileStore serves teacher credentials loaded from a JSON file.
type FileStore struct {
	path   string
	logger *slog.Logger

	mu       sync.RWMutex
	teachers map[string]domain.Teacher
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *FileStore) {
		s.logger = logger
	}
}

// NewFileStore loads path and returns the store. A malformed file is an error.
func NewFileStore(path string, opts ...Option) (*FileStore, error) {
	s := &FileStore{
		path:     path,
		logger:   slog.Default(),
		teachers: make(map[string]domain.Teacher),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticStore returns a store over a fixed teacher list. Reload is a no-op.
func NewStaticStore(teachers ...domain.Teacher) *FileStore {
	s := &FileStore{
		logger:   slog.Default(),
		teachers: make(map[string]domain.Teacher),
	}
	s.teachers = s.index(teachers)
	return s
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Reload re-reads the credential file. On failure the current set is kept.
func (s *FileStore) Reload() error {
	if s.path == "" {
		return nil
	}

	teachers, err := s.read()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.teachers = teachers
	s.mu.Unlock()

	s.logger.Info("teacher credentials loaded",
		"path", s.path,
		"count", len(teachers),
	)
	return nil
}

func (s *FileStore) read() (map[string]domain.Teacher, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("teacher credential file not found, no teachers can log in",
			"path", s.path,
		)
		return map[string]domain.Teacher{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credential file %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse credential file %s: %w", s.path, err)
	}
	return s.index(doc.Teachers), nil
}

// index keys teachers by username. The first entry for a username wins.
func (s *FileStore) index(list []domain.Teacher) map[string]domain.Teacher {
	out := make(map[string]domain.Teacher, len(list))
	for _, t := range list {
		if t.Username == "" {
			s.logger.Warn("skipping teacher entry without username")
			continue
		}
		if _, dup := out[t.Username]; dup {
			s.logger.Warn("duplicate teacher username ignored", "username", t.Username)
			continue
		}
		out[t.Username] = t
	}
	return out
}

// Authenticate returns the teacher whose username and password both match.
func (s *FileStore) Authenticate(username, password string) (domain.Teacher, bool) {
	s.mu.RLock()
	t, ok := s.teachers[username]
	s.mu.RUnlock()

	// Unknown usernames still go through the compare.
	match := token.Equal(t.Password, password)
	if !ok || !match || username == "" {
		return domain.Teacher{}, false
	}
	return t, true
}

// Len returns the number of teachers.
func (s *FileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teachers)
}

// Watch reloads the store whenever w reports a change to its file.
func (s *FileStore) Watch(w *confloader.Watcher) error {
	if s.path == "" {
		return nil
	}
	err := w.Watch(s.path, func(string) {
		if err := s.Reload(); err != nil {
			s.logger.Error("credential reload failed, keeping previous teachers",
				"path", s.path,
				"error", err,
			)
		}
	})
	if err != nil {
		return fmt.Errorf("watch credential file: %w", err)
	}
	return nil
}
