package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business error with a stable error code.
//
// Codes have the form MH-<AREA>-<NNNN>; the trailing digits follow the HTTP
// status family the transport maps them to.
type DomainError struct {
	Code    string // Error code (e.g., "MH-ACT-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// GetErrorMessage returns the client-facing message of a DomainError,
// including details when present. Non-domain errors yield an empty string.
func GetErrorMessage(err error) string {
	var de *DomainError
	if !errors.As(err, &de) {
		return ""
	}
	if de.Details != "" {
		return de.Message + ": " + de.Details
	}
	return de.Message
}

// Authentication errors (AUTH).
var (
	// ErrInvalidCredentials is returned by login when no teacher matches the
	// username and password pair. It never says which half was wrong.
	ErrInvalidCredentials = NewDomainError("MH-AUTH-4010", "Invalid username or password")

	// ErrNotAuthenticated is returned by logout when the presented token does
	// not resolve to a teacher.
	ErrNotAuthenticated = NewDomainError("MH-AUTH-4011", "Not authenticated")

	// ErrUnauthorized is returned when a privileged enrollment operation is
	// attempted anonymously.
	ErrUnauthorized = NewDomainError("MH-AUTH-4012", "Only teachers can unregister students from activities")
)

// Session errors (SESS). These stay inside the server; the auth service
// translates them before they reach a client.
var (
	ErrSessionNotFound   = NewDomainError("MH-SESS-4040", "session not found")
	ErrTokenHashConflict = NewDomainError("MH-SESS-4090", "token hash conflict")
)

// Activity errors (ACT).
var (
	// ErrActivityNotFound indicates the activity name is unknown.
	ErrActivityNotFound = NewDomainError("MH-ACT-4040", "Activity not found")

	// ErrAlreadyEnrolled indicates the email is already in the roster.
	ErrAlreadyEnrolled = NewDomainError("MH-ACT-4001", "Student is already signed up")

	// ErrNotEnrolled indicates the email is not in the roster.
	ErrNotEnrolled = NewDomainError("MH-ACT-4002", "Student is not signed up for this activity")

	// ErrActivityFull indicates the roster reached max_participants while
	// capacity enforcement is enabled.
	ErrActivityFull = NewDomainError("MH-ACT-4003", "Activity is full")
)

// Argument errors (ARG).
var (
	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("MH-ARG-1002", "missing required argument")
)

// System errors (SYS).
var (
	// ErrInternalServer indicates an internal server error.
	ErrInternalServer = NewDomainError("MH-SYS-5000", "internal server error")

	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = NewDomainError("MH-SYS-4000", "bad request")
)
