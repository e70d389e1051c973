// Package logger provides structured logging on top of log/slog.
//
//   - logger.go: handler construction, level parsing, slog default
//   - context.go: request ID propagation
//   - redact.go: masking of bearer tokens, token hashes and secret-like keys
//
// SetDefault also replaces slog.Default, so code that logs through the
// standard slog functions gets the same redaction.
package logger
