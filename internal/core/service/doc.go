// Package service provides the domain services of the activity service.
//
// This package contains:
//
//   - AuthService: teacher login, token resolution and logout
//   - EnrollmentService: activity listing, signup and unregistration
//
// Services hold no package-level state. Their storage dependencies are the
// interfaces declared in repository.go, so the in-memory stores can be
// swapped in tests.
package service
