package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path comes from CONFIG_PATH (fallback "./config.yaml").
// A missing fallback file is not an error: ENV + defaults are used instead.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		return loadFrom(defaultConfigPath, false)
	}
	return loadFrom(path, true)
}

func loadFrom(path string, required bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
