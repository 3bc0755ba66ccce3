// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from
// a `.env` file), loads them into structured Go types, and validates that
// required values are present so the application fails fast on bad or
// missing configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Env vars use the GAMESHELF_ prefix and dots for nesting:
//
//	GAMESHELF_SERVER.PORT -> server.port -> Config.Server.Port

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional; defaults are
// injected when the block is absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs/traces and switch behavior per environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimitPerMinute caps requests per client IP per minute.
	// Zero disables rate limiting. Enforcement needs Redis configured.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`
}

// DatabaseConfig selects and configures the persistence backend.
//
// Driver "postgres" is the production path; "sqlite" opens a local file
// (or :memory:) and is intended for development.
type DatabaseConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=postgres sqlite"`

	// Postgres connection parameters.
	Host     string `koanf:"host" validate:"required_if=Driver postgres"`
	Port     int    `koanf:"port" validate:"required_if=Driver postgres"`
	User     string `koanf:"user" validate:"required_if=Driver postgres"`
	Password string `koanf:"password" validate:"required_if=Driver postgres"`
	Name     string `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode  string `koanf:"ssl_mode" validate:"required_if=Driver postgres"`

	// Path is the sqlite database file.
	Path string `koanf:"path" validate:"required_if=Driver sqlite"`

	// Pool tuning, applied to the database/sql handle under the ORM.
	MaxOpenConns    int `koanf:"max_open_conns"`
	MaxIdleConns    int `koanf:"max_idle_conns"`
	ConnMaxLifetime int `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int `koanf:"conn_max_idle_time"`
}

// RedisConfig contains Redis connection details.
// An empty Address means Redis is not configured; dependent features
// (rate limiting, the redis health check) degrade gracefully.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// Load reads configuration from environment variables, unmarshals it into
// Config, validates it, and applies observability defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("GAMESHELF_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GAMESHELF_"))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are forced so telemetry stays
	// consistently labeled regardless of what was configured.
	mainConfig.Observability.ServiceName = "gameshelf"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
