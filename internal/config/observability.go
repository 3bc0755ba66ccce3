package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups all configuration related to telemetry and
// runtime visibility: logging, the New Relic agent, and dependency health
// checks. It can be omitted entirely; defaults are injected.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces/APM dashboards.
	// Forced by Load(), never user-configured.
	ServiceName string `koanf:"service_name"`

	// Environment labels telemetry (production, staging, local, ...).
	Environment string `koanf:"environment"`

	Logging  LoggingConfig  `koanf:"logging"`
	NewRelic NewRelicConfig `koanf:"new_relic"`

	HealthChecks HealthChecksConfig `koanf:"health_checks"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects the output format ("json" or "console").
	Format string `koanf:"format"`

	// SlowQueryThreshold is the duration beyond which ORM queries are
	// logged as slow. Supply a parseable duration string ("100ms", "1s").
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
// An empty LicenseKey means the agent is disabled; every integration
// point degrades to a no-op.
type NewRelicConfig struct {
	LicenseKey string `koanf:"license_key"`

	// AppLogForwardingEnabled forwards application logs to New Relic.
	AppLogForwardingEnabled bool `koanf:"app_log_forwarding_enabled"`

	// DistributedTracingEnabled enables distributed tracing across
	// service boundaries.
	DistributedTracingEnabled bool `koanf:"distributed_tracing_enabled"`

	// DebugLogging enables debug output for the agent.
	DebugLogging bool `koanf:"debug_logging"`
}

// HealthChecksConfig controls the /status dependency checks.
type HealthChecksConfig struct {
	Enabled bool `koanf:"enabled"`

	// Timeout is the max time allowed per dependency check.
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultObservabilityConfig provides sensible defaults for local
// development without breaking production.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "gameshelf",
		Environment: "local",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			AppLogForwardingEnabled:   false,
			DistributedTracingEnabled: false,
			DebugLogging:              false,
		},
		HealthChecks: HealthChecksConfig{
			Enabled: true,
			Timeout: 5 * time.Second,
		},
	}
}

// Validate normalizes and checks the observability block. Partial blocks
// (e.g. only a license key set) are filled with defaults rather than
// rejected.
func (o *ObservabilityConfig) Validate() error {
	if o.Logging.Level == "" {
		o.Logging.Level = "info"
	}
	switch o.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", o.Logging.Level)
	}

	if o.Logging.Format == "" {
		o.Logging.Format = "json"
	}
	switch o.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", o.Logging.Format)
	}

	if o.Logging.SlowQueryThreshold <= 0 {
		o.Logging.SlowQueryThreshold = 100 * time.Millisecond
	}

	if o.HealthChecks.Timeout <= 0 {
		o.HealthChecks.Timeout = 5 * time.Second
	}

	return nil
}
