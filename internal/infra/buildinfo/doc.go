// Package buildinfo exposes version information for the server and CLI
// binaries.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/mergington-go/internal/infra/buildinfo.Version=v1.0.0"
//
// When they are not injected, the module version and VCS stamp recorded
// by the Go toolchain are used instead.
package buildinfo
