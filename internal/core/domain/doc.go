// Package domain defines the core domain models for the Mergington
// activity service.
//
// Domain models are plain values without IO dependencies:
//
//   - Activity: an extracurricular offering and its participant roster
//   - Teacher: a staff identity sourced from the credential store
//   - Session: a server-held association between a token hash and a teacher
//   - Token: bearer token generation and hashing
//   - Errors: coded domain errors shared by services and transports
package domain
