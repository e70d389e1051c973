package config

import (
	"fmt"

	"github.com/yndnr/mergington-go/internal/infra/confloader"
)

// Load builds the configuration from defaults, the optional YAML file at
// path, MERGINGTON_ environment variables and any extra loader options,
// then verifies it.
func Load(path string, opts ...confloader.Option) (*ServerConfig, error) {
	cfg := Default()

	loader := confloader.NewLoader(append([]confloader.Option{confloader.WithConfigFile(path)}, opts...)...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
