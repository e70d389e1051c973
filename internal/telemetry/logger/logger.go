package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the application logger interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger

	// Slog exposes the underlying *slog.Logger for libraries that take one.
	Slog() *slog.Logger
}

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Format is the output format (json, text).
	Format string
	// Output is the output writer (defaults to os.Stderr).
	Output io.Writer
	// AddSource adds source file information to log entries.
	AddSource bool
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Output: os.Stderr}
}

// logger embeds *slog.Logger for the level methods and overrides With so
// derived loggers keep satisfying Logger.
type logger struct {
	*slog.Logger
}

func (l logger) With(args ...any) Logger {
	return logger{l.Logger.With(args...)}
}

func (l logger) Slog() *slog.Logger {
	return l.Logger
}

// New creates a new logger with the given configuration. Every handler
// runs attributes through the redaction filter.
func New(cfg Config) (Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   cfg.AddSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr { return redactSensitive(a) },
	}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "json":
		h = slog.NewJSONHandler(out, opts)
	case "text", "console":
		h = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return logger{slog.New(h)}, nil
}

// ParseLevel converts a level name to slog.Level. Empty means info and
// "warning" is accepted for warn.
func ParseLevel(name string) (slog.Level, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil || strings.ContainsAny(name, "+-") {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// SetDefault installs l as slog.Default, so code logging through log/slog
// gets the same handler and redaction.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	slog.SetDefault(l.Slog())
}
