// Package config loads the optional YAML run-configuration file for the
// errseed CLI. Flags always override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the run-configuration file. Zero values mean "not set";
// the CLI keeps its flag or default in that case.
type Config struct {
	ProjectID string `yaml:"project_id"`
	Count     int    `yaml:"count"`
	Format    string `yaml:"format"`
	Prefix    string `yaml:"prefix"`
	LogName   string `yaml:"log_name"`
	Seed      *int64 `yaml:"seed"`
}

// Load reads and parses the file at path. An empty path yields an empty
// configuration so callers need no special case for "no config file".
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("config %s: count must not be negative", path)
	}
	return &cfg, nil
}
