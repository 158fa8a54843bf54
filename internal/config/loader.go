package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads YAML overrides from path on top of the defaults.
// It returns ErrConfigNotFound if the file does not exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user or XDG
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Load returns the configuration from path, or from the XDG default location when
// path is empty. A missing file at the default location yields the defaults; a
// missing file at an explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) && !explicit {
			return NewConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
