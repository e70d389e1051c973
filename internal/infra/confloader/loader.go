package confloader

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultEnvPrefix is the default environment variable prefix.
	DefaultEnvPrefix = "MERGINGTON_"

	// EnvLevelSeparator separates nesting levels in environment variable
	// names, so single underscores can stay inside key names.
	EnvLevelSeparator = "__"
)

// Loader merges configuration layers into a koanf tree. Later layers win:
// YAML files in the order given, then the environment, then overrides.
type Loader struct {
	k         *koanf.Koanf
	files     []string
	overrides map[string]any
}

// Option configures a Loader.
type Option func(*Loader)

// WithConfigFile adds a YAML file layer. Empty paths are skipped.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		if path != "" {
			l.files = append(l.files, path)
		}
	}
}

// WithOverrides adds a final layer of dotted keys, typically from flags.
func WithOverrides(values map[string]any) Option {
	return func(l *Loader) { l.overrides = values }
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{k: koanf.New(".")}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges every layer and unmarshals the result into target by koanf
// tags. Fields that no layer sets keep their current values, so callers
// pass a struct already holding defaults.
func (l *Loader) Load(target any) error {
	for _, path := range l.files {
		if err := l.LoadFile(path); err != nil {
			return err
		}
	}
	if err := l.LoadEnv(); err != nil {
		return err
	}
	if len(l.overrides) > 0 {
		if err := l.LoadMap(l.overrides); err != nil {
			return err
		}
	}
	if err := l.k.Unmarshal("", target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// LoadFile merges a YAML file.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv merges variables carrying DefaultEnvPrefix:
// MERGINGTON_AUTH__LOGOUT_SCOPE=user sets auth.logout_scope.
func (l *Loader) LoadEnv() error {
	prefix := DefaultEnvPrefix
	toKey := func(name string) string {
		name = strings.ToLower(strings.TrimPrefix(name, prefix))
		return strings.ReplaceAll(name, EnvLevelSeparator, ".")
	}
	if err := l.k.Load(env.Provider(prefix, ".", toKey), nil); err != nil {
		return fmt.Errorf("load env %s*: %w", prefix, err)
	}
	return nil
}

// LoadMap merges dotted keys from values. confmap unflattens them on the
// loader's delimiter, so "server.http.addr" lands under server.http.
func (l *Loader) LoadMap(values map[string]any) error {
	if err := l.k.Load(confmap.Provider(values, "."), nil); err != nil {
		return fmt.Errorf("load overrides: %w", err)
	}
	return nil
}

// String returns the merged value at key.
func (l *Loader) String(key string) string { return l.k.String(key) }

// Bool returns the merged value at key.
func (l *Loader) Bool(key string) bool { return l.k.Bool(key) }

// Keys returns every merged key.
func (l *Loader) Keys() []string { return l.k.Keys() }
