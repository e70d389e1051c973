// Command mergington-server serves the Mergington High School activity
// enrollment API.
//
// Usage:
//
//	mergington-server -config /etc/mergington/server.yaml
//	MERGINGTON_AUTH__LOGOUT_SCOPE=user mergington-server
//	mergington-server -addr 127.0.0.1:9000 -log-level debug
//
// -addr and -log-level take precedence over the file and the environment.
//
// Activities and sessions live in memory; teacher credentials come from
// the JSON file named by auth.teachers_file.
package main
