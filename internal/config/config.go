// Package config defines the configuration for the Outings service.
// Configuration is loaded once at process start and is immutable thereafter,
// following 12-Factor principles: values come from the OS environment, with a
// .env file as a development convenience.
//
// A missing required value (notably the home coordinate and database URL)
// fails startup immediately; the engine itself never validates configuration.
package config

import (
	"time"
)

// Config is the top-level configuration struct. Sub-components receive only
// the subsets they need.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"oneof=local dev prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"outings-api"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	Server   ServerConfig
	Database DatabaseConfig
	Home     HomeConfig
	Weather  WeatherConfig
	Routing  RoutingConfig
	Engine   EngineConfig
	Clock    ClockConfig

	// Build metadata, injected via ldflags rather than environment.
	Build BuildInfo
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string        `envconfig:"PORT" default:"8080"`
	RequestTimeout     time.Duration `envconfig:"REQUEST_TIMEOUT" default:"25s"`
	CorsAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// DatabaseConfig holds connection and pool tuning parameters for Postgres.
type DatabaseConfig struct {
	URL string `envconfig:"DATABASE_URL" validate:"required,url"`

	MaxConns        int           `envconfig:"DB_MAX_CONNS" default:"5"`
	MinConns        int           `envconfig:"DB_MIN_CONNS" default:"1"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`
}

// HomeConfig pins the household's origin point and local time zone. All
// distance and opening-hours evaluation is relative to these.
type HomeConfig struct {
	Lat      float64 `envconfig:"HOME_LAT" validate:"required,latitude"`
	Lon      float64 `envconfig:"HOME_LON" validate:"required,longitude"`
	Timezone string  `envconfig:"HOME_TIMEZONE" default:"America/New_York"`
}

// WeatherConfig holds the upstream weather data sources.
type WeatherConfig struct {
	OpenMeteoBaseURL string        `envconfig:"OPEN_METEO_BASE_URL" default:"https://api.open-meteo.com"`
	NWSBaseURL       string        `envconfig:"NWS_BASE_URL" default:"https://api.weather.gov"`
	UserAgent        string        `envconfig:"WEATHER_USER_AGENT" default:"Outings/1.0 (contact: ops@example.com)"`
	Timeout          time.Duration `envconfig:"WEATHER_TIMEOUT" default:"10s"`
}

// RoutingConfig holds the drive-time estimator settings.
type RoutingConfig struct {
	OSRMBaseURL string        `envconfig:"OSRM_BASE_URL" default:"https://router.project-osrm.org"`
	Timeout     time.Duration `envconfig:"ROUTING_TIMEOUT" default:"10s"`
	// FallbackMph is the assumed average speed for the straight-line
	// estimate used when the routing upstream is unreachable.
	FallbackMph float64 `envconfig:"ROUTING_FALLBACK_MPH" default:"28"`
}

// EngineConfig holds recommendation engine tuning.
type EngineConfig struct {
	DefaultLimit int `envconfig:"ENGINE_DEFAULT_LIMIT" default:"5"`
	WeekendLimit int `envconfig:"ENGINE_WEEKEND_LIMIT" default:"6"`
	LogWindow    int `envconfig:"ENGINE_LOG_WINDOW" default:"200"`
}

// ClockConfig allows pinning "now" for demos and deterministic testing.
// FakeNow accepts an RFC 3339 timestamp; empty means real time.
type ClockConfig struct {
	FakeNow string `envconfig:"FAKE_NOW"`
}

// BuildInfo holds build-time metadata injected via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// ConfigErrorType categorizes configuration loading failures.
type ConfigErrorType string

const (
	// ErrParsing indicates environment values failed to parse into their
	// target types.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
	// ErrValidation indicates the configuration failed struct validation.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrClock indicates the FAKE_NOW override could not be parsed.
	ErrClock ConfigErrorType = "CLOCK_OVERRIDE_INVALID"
	// ErrTimezone indicates HOME_TIMEZONE is not a valid IANA zone name.
	ErrTimezone ConfigErrorType = "TIMEZONE_INVALID"
)
