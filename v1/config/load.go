package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultEnvFile is read when present; a missing file is not an error.
const DefaultEnvFile = ".env"

// Options selects the optional file sources of Load.
type Options struct {
	// ConfigPath is a YAML file. Empty skips it.
	ConfigPath string

	// EnvFile is a dotenv file whose values do not override the real
	// environment. Empty uses DefaultEnvFile.
	EnvFile string
}

// Load builds the configuration from defaults, then the YAML file, then the
// dotenv file, then the process environment. Later sources win.
func Load(opts Options) (Config, error) {
	cfg := Default()

	if opts.ConfigPath != "" {
		if err := loadYAML(opts.ConfigPath, &cfg); err != nil {
			return Config{}, err
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || opts.EnvFile != "" {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
