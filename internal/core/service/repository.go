package service

import (
	"context"

	"github.com/yndnr/mergington-go/internal/core/domain"
)

// CredentialStore resolves teacher credentials.
type CredentialStore interface {
	// Authenticate returns the teacher matching both username and password.
	Authenticate(username, password string) (domain.Teacher, bool)
}

// SessionRepository defines the storage interface for session operations.
type SessionRepository interface {
	// Create stores a new session keyed by its token hash.
	Create(ctx context.Context, session *domain.Session) error

	// GetByToken retrieves a session by token hash.
	GetByToken(ctx context.Context, tokenHash string) (*domain.Session, error)

	// DeleteByToken removes a session by token hash and returns it.
	DeleteByToken(ctx context.Context, tokenHash string) (*domain.Session, error)

	// DeleteByUsername removes every session of a teacher.
	DeleteByUsername(ctx context.Context, username string) (int, error)

	// Count returns the number of live sessions.
	Count() int
}

// ActivityRepository defines the storage interface for the activity catalogue.
type ActivityRepository interface {
	// List returns copies of all activities keyed by name.
	List(ctx context.Context) (map[string]*domain.Activity, error)

	// Get returns a copy of one activity.
	Get(ctx context.Context, name string) (*domain.Activity, error)

	// Update applies fn to the named activity atomically. The change is kept
	// only when fn returns nil.
	Update(ctx context.Context, name string, fn func(*domain.Activity) error) (*domain.Activity, error)
}

// Recorder receives operation outcomes for metrics.
//
// result is "success" or the domain error code of the failure.
type Recorder interface {
	RecordLogin(result string)
	RecordSignup(result string)
	RecordUnregister(result string)
	SetActiveSessions(n int)
}

type nopRecorder struct{}

func (nopRecorder) RecordLogin(string)      {}
func (nopRecorder) RecordSignup(string)     {}
func (nopRecorder) RecordUnregister(string) {}
func (nopRecorder) SetActiveSessions(int)   {}

// ResultSuccess is the result label of a successful operation.
const ResultSuccess = "success"

func resultOf(err error) string {
	if err == nil {
		return ResultSuccess
	}
	if code := domain.GetErrorCode(err); code != "" {
		return code
	}
	return "error"
}
