package config

import (
	"github.com/caarlos0/env/v10"
)

// Supported storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	// Storage
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"file"`
	DataDir        string `env:"DATA_DIR"        envDefault:""`
	SQLitePath     string `env:"SQLITE_PATH"     envDefault:""`
	RedisURL       string `env:"REDIS_URL"       envDefault:"redis://localhost:6379"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables. DataDir and
// SQLitePath default to empty; the caller resolves them against the user's
// home directory.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
