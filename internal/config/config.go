// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/ketchup/pkg/logger"
)

// Config holds all service settings. Every field is populated from
// environment variables prefixed with KETCHUP_.
type Config struct {
	Server Server `envPrefix:"SERVER_"`

	// Optional JSON, YAML or TOML file with rule templates that override or
	// extend the built-in English catalog.
	MessagesFile string `env:"MESSAGES_FILE"`

	// Property the exported JavaScript assigns the catalog to.
	JSTarget string `env:"JS_TARGET" envDefault:"$.fn.ketchup.messages"`

	// Skip the arity check when loading a custom catalog. Useful for
	// translations that phrase an argument out of the message.
	SkipArityCheck bool `env:"SKIP_ARITY_CHECK" envDefault:"false"`

	Log logger.Config
}

// Server holds HTTP server settings.
type Server struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Cache-Control max-age for the catalog endpoints.
	CacheMaxAge time.Duration `env:"CACHE_MAX_AGE" envDefault:"1h"`
}

// Prefix is prepended to every environment variable name.
const Prefix = "KETCHUP_"

// Load reads an optional .env file from the working directory, then parses
// the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: loading .env: %w", err)
	}
	return Parse(os.Environ())
}

// Parse builds a Config from a list of KEY=value pairs, without touching the
// process environment.
func Parse(environ []string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      Prefix,
		Environment: env.ToMap(environ),
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return errors.New("config: KETCHUP_SERVER_ADDR cannot be empty")
	}
	if c.Server.CacheMaxAge < 0 {
		return errors.New("config: KETCHUP_SERVER_CACHE_MAX_AGE cannot be negative")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
