// Package config loads server configuration from an optional YAML file with
// environment variable overrides. A local .env file is honored when present.
package config

import (
	"fmt"
	"os"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs at startup.
type Config struct {
	// ListenAddr is the host:port the HTTP server binds to.
	ListenAddr string `yaml:"listen_addr" env:"GYM_LISTEN_ADDR"`
	// DataDir is the directory holding the CSV data files. It is created on
	// first write if missing.
	DataDir string `yaml:"data_dir" env:"GYM_DATA_DIR"`
	// ExpirySchedule is the cron expression for the membership expiry sweep.
	// An empty value disables the sweep.
	ExpirySchedule string `yaml:"expiry_schedule" env:"GYM_EXPIRY_SCHEDULE"`
	// LogLevel sets the logrus level for all components.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	// CORSAllowedOrigins is served back on cross-origin requests.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" env:"GYM_CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		ListenAddr:         ":8080",
		DataDir:            "data",
		ExpirySchedule:     "0 6 * * *",
		LogLevel:           "info",
		CORSAllowedOrigins: []string{"*"},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty the file must exist; otherwise gym.yaml is read when
// present), then environment variables.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	required := path != ""
	if path == "" {
		path = "gym.yaml"
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !required:
		// No file, defaults apply.
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config environment: %w", err)
	}

	if cfg.ListenAddr == "" {
		return Config{}, fmt.Errorf("listen_addr must not be empty")
	}
	if cfg.DataDir == "" {
		return Config{}, fmt.Errorf("data_dir must not be empty")
	}
	return cfg, nil
}
