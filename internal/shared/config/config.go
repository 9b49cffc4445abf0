package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Version         string        `env:"VERSION" envDefault:"0.1.0"`
	Port            int           `env:"PORT" envDefault:"8080"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN       string        `env:"SENTRY_DSN"`
	LoginBackendURL string        `env:"LOGIN_BACKEND_URL" envDefault:"http://localhost:5000"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"static"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"0s"`
}

// NewConfig reads an optional .env file from the working directory and then
// parses the environment. Variables already set in the environment win.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsEnvProd() bool {
	if c.Environment == "prod" && c.SentryDSN != "" {
		return true
	}
	return false
}
