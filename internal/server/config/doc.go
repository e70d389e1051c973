// Package config defines the server configuration.
//
//   - spec.go: ServerConfig and its sections
//   - default.go: default values
//   - verify.go: validation run before the server starts
//   - load.go: loading through internal/infra/confloader
package config
