package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is used when neither CONFIG_PATH nor an explicit path is given.
const DefaultPath = "./config.yaml"

// Load resolves the config file from CONFIG_PATH and reads it. ENV values
// override YAML, which overrides env-default tags. A missing DefaultPath is
// not an error; the service then runs from ENV alone.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile reads the YAML file at path, overlays ENV and validates the result.
// An empty path falls back to DefaultPath, which may be absent. A non-empty
// path must exist.
func LoadFile(path string) (*Config, error) {
	required := path != ""
	if !required {
		path = DefaultPath
	}

	cfg, err := read(path, required)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func read(path string, required bool) (*Config, error) {
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
	return &cfg, nil
}
