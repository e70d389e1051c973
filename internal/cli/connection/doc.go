// Package connection is the HTTP client the CLI uses to reach the server.
//
// Error responses ({"code","detail","request_id"}) are decoded into
// *APIError so commands can inspect the server's error code.
package connection
