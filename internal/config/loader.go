// loader.go implements the configuration loading lifecycle:
//
//  1. Load a .env file via godotenv (non-fatal if absent).
//  2. Process envconfig struct tags to populate Config.
//  3. Populate BuildInfo from linker-injected variables.
//  4. Validate the struct with go-playground/validator.
//  5. Resolve the household time zone and the optional FAKE_NOW clock.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"outings/internal/types"
)

// Build metadata injected via -ldflags at compile time.
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

// ConfigError is a diagnostic error type returned by LoadConfig.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadConfig loads and validates the service configuration from the
// environment. It does not mutate global state beyond what godotenv injects.
func LoadConfig() (*Config, error) {
	// .env is a local-development convenience; absence is not an error and
	// existing environment variables are never overridden.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrParsing,
			Message: "failed to process environment configuration",
			Err:     err,
		}
	}

	cfg.Build = BuildInfo{Version: version, Commit: commit, BuildTime: buildTime}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrValidation,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return &cfg, nil
}

// Location resolves the configured household time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Home.Timezone)
	if err != nil {
		return nil, &ConfigError{
			Type:    ErrTimezone,
			Message: fmt.Sprintf("invalid HOME_TIMEZONE %q", c.Home.Timezone),
			Err:     err,
		}
	}
	return loc, nil
}

// HomeLocation returns the household origin coordinate.
func (c *Config) HomeLocation() types.Location {
	return types.Location{Lat: c.Home.Lat, Lon: c.Home.Lon}
}

// NewClock builds the process clock. With FAKE_NOW set, every time-sensitive
// component sees the pinned instant, which makes full recommendation runs
// reproducible.
func (c *Config) NewClock() (types.Clock, error) {
	if c.Clock.FakeNow == "" {
		return types.RealClock{}, nil
	}
	instant, err := time.Parse(time.RFC3339, c.Clock.FakeNow)
	if err != nil {
		return nil, &ConfigError{
			Type:    ErrClock,
			Message: fmt.Sprintf("invalid FAKE_NOW %q (want RFC 3339)", c.Clock.FakeNow),
			Err:     err,
		}
	}
	return types.FixedClock{Instant: instant.UTC()}, nil
}
