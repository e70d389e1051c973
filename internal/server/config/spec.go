package config

import "time"

// ServerConfig is the root configuration for mergington-server.
type ServerConfig struct {
	Server     ServerSection     `koanf:"server"`
	Auth       AuthSection       `koanf:"auth"`
	Enrollment EnrollmentSection `koanf:"enrollment"`
	Metrics    MetricsSection    `koanf:"metrics"`
	Log        LogSection        `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr        string `koanf:"addr"`
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`

	// CORSAllowedOrigins lists origins allowed to call the API from a
	// browser. "*" allows any origin; empty disables CORS headers.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// Audit enables per-request access logging.
	Audit bool `koanf:"audit"`
}

// AuthSection configures teacher authentication.
type AuthSection struct {
	// TeachersFile is the JSON credential file.
	TeachersFile string `koanf:"teachers_file"`

	// WatchTeachers reloads TeachersFile when it changes on disk.
	WatchTeachers bool `koanf:"watch_teachers"`

	// LogoutScope is "session" (revoke the presented token) or "user"
	// (revoke every session of the teacher).
	LogoutScope string `koanf:"logout_scope"`
}

// EnrollmentSection configures roster policy.
type EnrollmentSection struct {
	// EnforceCapacity rejects signups once max_participants is reached.
	EnforceCapacity bool `koanf:"enforce_capacity"`
}

// MetricsSection configures the Prometheus endpoint.
type MetricsSection struct {
	Enabled bool `koanf:"enabled"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TLSEnabled reports whether the HTTP server should serve TLS.
func (c HTTPConfig) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}
