// Package tlsroots loads TLS material for the server and the CLI.
//
//   - roots.go: CA pools for clients talking to a TLS-enabled server
//   - keypair.go: the server certificate, reloadable when its files change
package tlsroots
