// Package httpserver provides the HTTP/HTTPS server for the activity service.
//
// It uses the Go standard library net/http. NewRouter wires the handler
// package behind a middleware chain of panic recovery, request IDs, CORS,
// audit logging, per-route metrics and bearer identity resolution.
package httpserver
