package service

import (
	"context"
	"strings"

	"github.com/yndnr/mergington-go/internal/core/domain"
)

// EnrollmentService manages activity rosters.
type EnrollmentService struct {
	activities      ActivityRepository
	enforceCapacity bool
	recorder        Recorder
}

// EnrollmentServiceConfig holds configuration for EnrollmentService.
type EnrollmentServiceConfig struct {
	// EnforceCapacity rejects signups once an activity reaches
	// MaxParticipants (default: false).
	EnforceCapacity bool

	// Recorder receives signup and unregister outcomes (default: discard).
	Recorder Recorder
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(activities ActivityRepository, config *EnrollmentServiceConfig) *EnrollmentService {
	if config == nil {
		config = &EnrollmentServiceConfig{}
	}
	s := &EnrollmentService{
		activities:      activities,
		enforceCapacity: config.EnforceCapacity,
		recorder:        config.Recorder,
	}
	if s.recorder == nil {
		s.recorder = nopRecorder{}
	}
	return s
}

// List returns a snapshot of every activity keyed by name.
func (s *EnrollmentService) List(ctx context.Context) (map[string]*domain.Activity, error) {
	return s.activities.List(ctx)
}

// Activity returns a snapshot of one activity.
func (s *EnrollmentService) Activity(ctx context.Context, name string) (*domain.Activity, error) {
	return s.activities.Get(ctx, name)
}

// Signup enrolls email in the named activity. No authentication is needed.
// An unknown activity is reported before any check on email.
func (s *EnrollmentService) Signup(ctx context.Context, activity, email string) (err error) {
	defer func() { s.recorder.RecordSignup(resultOf(err)) }()

	_, err = s.activities.Update(ctx, activity, func(a *domain.Activity) error {
		if err := requireEmail(email); err != nil {
			return err
		}
		if a.HasParticipant(email) {
			return domain.ErrAlreadyEnrolled
		}
		if s.enforceCapacity && a.IsFull() {
			return domain.ErrActivityFull
		}
		return a.AddParticipant(email)
	})
	return err
}

// UnregisterRequest identifies the roster entry to remove and who asks.
type UnregisterRequest struct {
	Activity string
	Email    string
	Identity domain.Identity
}

// Unregister removes email from the named activity.
//
// Only teachers may unregister; an anonymous caller is rejected before the
// activity or email are looked at, and an unknown activity before email.
func (s *EnrollmentService) Unregister(ctx context.Context, req *UnregisterRequest) (err error) {
	defer func() { s.recorder.RecordUnregister(resultOf(err)) }()

	if !req.Identity.IsTeacher() {
		return domain.ErrUnauthorized
	}

	_, err = s.activities.Update(ctx, req.Activity, func(a *domain.Activity) error {
		if err := requireEmail(req.Email); err != nil {
			return err
		}
		return a.RemoveParticipant(req.Email)
	})
	return err
}

func requireEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return domain.ErrMissingArgument.WithDetails("email is required")
	}
	return nil
}
