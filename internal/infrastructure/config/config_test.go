package config_test

import (
	"testing"
	"time"

	"github.com/iho/minibank/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default session TTL 24h, got %s", cfg.SessionTTL)
	}

	if !cfg.SeedDemoData {
		t.Fatal("expected demo data seeding to default on")
	}

	if cfg.RedisURL != "" {
		t.Fatalf("expected redis to default off, got %q", cfg.RedisURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected session TTL override, got %s", cfg.SessionTTL)
	}

	if cfg.SeedDemoData {
		t.Fatal("expected demo data seeding to be off")
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level override, got %s", cfg.LogLevel)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
