package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable holding the config file path.
const PathEnv = "MINPAIRS_CONFIG"

// defaultPath is tried when no path is given. It is optional.
const defaultPath = "./config.yaml"

// Load reads the file named by MINPAIRS_CONFIG, or ./config.yaml when the
// variable is unset. Environment variables override the file and
// env-default tags fill whatever neither sets.
func Load() (*Config, error) {
	return LoadPath(os.Getenv(PathEnv))
}

// LoadPath is Load with an explicit file path. A named file must exist;
// the empty path falls back to ./config.yaml and then to the environment
// alone.
func LoadPath(path string) (*Config, error) {
	var cfg Config
	if err := read(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, cfg *Config) error {
	if path == "" {
		if _, err := os.Stat(defaultPath); errors.Is(err, fs.ErrNotExist) {
			if err := cleanenv.ReadEnv(cfg); err != nil {
				return fmt.Errorf("config: read env: %w", err)
			}
			return nil
		}
		path = defaultPath
	} else if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config: file %s: %w", path, err)
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}
