package config

import (
	"testing"
	"time"
)

func TestObservabilityValidateFillsDefaults(t *testing.T) {
	cfg := &ObservabilityConfig{}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level info, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected default format json, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.SlowQueryThreshold != 100*time.Millisecond {
		t.Errorf("expected default slow query threshold, got %v", cfg.Logging.SlowQueryThreshold)
	}
	if cfg.HealthChecks.Timeout != 5*time.Second {
		t.Errorf("expected default health check timeout, got %v", cfg.HealthChecks.Timeout)
	}
}

func TestObservabilityValidateRejectsUnknownValues(t *testing.T) {
	if err := (&ObservabilityConfig{Logging: LoggingConfig{Level: "verbose"}}).Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
	if err := (&ObservabilityConfig{Logging: LoggingConfig{Format: "xml"}}).Validate(); err == nil {
		t.Error("expected error for unknown log format")
	}
}
