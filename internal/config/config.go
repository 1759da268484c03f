// Package config provides centralized configuration management for the
// organization map server. It loads configuration from environment variables
// with sensible defaults and validates all settings on startup to fail fast
// on misconfiguration.
package config

import (
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Table   TableConfig
	Rate    RateLimitConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// DataConfig holds dataset loading settings.
//
// Each dataset is described by an ordered list of candidate CSV locations;
// the first candidate that fetches, parses, and yields at least one row wins.
// The geocoded exports are preferred, with the raw files as fallback.
type DataConfig struct {
	// BaseURL is prepended to relative candidate paths. Absolute candidates
	// (http:// or https://) are used as-is. (required)
	// Supports both DATA_BASE_URL and BASE_URL env vars for compatibility.
	BaseURL string `env:"DATA_BASE_URL" envAlt:"BASE_URL" required:"true"`

	// AsianCandidates is the ordered candidate list for the Asian American
	// organizations dataset.
	AsianCandidates []string `env:"DATA_ASIAN_CANDIDATES" default:"processed_data/asian_org_geocoded.csv,raw_data/asian_org.csv"`

	// LatinoCandidates is the ordered candidate list for the Latino
	// organizations dataset.
	LatinoCandidates []string `env:"DATA_LATINO_CANDIDATES" default:"processed_data/latino_org_geocoded.csv,raw_data/latino_org.csv"`

	// FetchTimeout is the HTTP timeout for a single candidate fetch (default: 30s)
	FetchTimeout time.Duration `env:"DATA_FETCH_TIMEOUT" default:"30s"`
}

// TableConfig holds tabular view settings.
type TableConfig struct {
	// RowCap limits the number of rows returned by the table endpoint.
	// Zero means uncapped; the true match count is always reported. (default: 0)
	RowCap int `env:"TABLE_ROW_CAP" default:"0"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 300)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"300"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
