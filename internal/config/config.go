package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"glade.dev/internal/generation"
)

// Config holds all application configuration
type Config struct {
	Addr     string            `yaml:"addr"`
	DataPath string            `yaml:"data_path"`
	World    generation.Config `yaml:"world"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Addr:     ":8080",
		DataPath: "data",
		World:    generation.DefaultConfig(),
	}
}

// Load reads the YAML config at path and merges it over the defaults.
// A missing or empty path leaves the defaults untouched. The SERVER_ADDR
// environment variable overrides the listen address either way.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// run on defaults
		case err != nil:
			return cfg, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	return cfg, nil
}
