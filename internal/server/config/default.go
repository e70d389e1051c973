package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr        = "127.0.0.1:8000"
	DefaultShutdownTimeout = 10 * time.Second

	DefaultTeachersFile = "teachers.json"
	DefaultLogoutScope  = "session"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:  DefaultHTTPAddr,
				Audit: true,
			},
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Auth: AuthSection{
			TeachersFile:  DefaultTeachersFile,
			WatchTeachers: true,
			LogoutScope:   DefaultLogoutScope,
		},
		Metrics: MetricsSection{
			Enabled: true,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
