// Package command defines the mergington-cli commands using urfave/cli/v2.
//
//   - root.go: the app, global flags and client construction
//   - auth.go: login, logout, whoami
//   - activity.go: activities list, show, signup, unregister
//
// Commands write to the app's Writer so tests can capture output.
package command
