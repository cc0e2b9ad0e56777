package config

import (
	"os"
	"testing"
	"time"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		unset := []string{
			"NAVI_HTTP_PORT",
			"NAVI_SQLITE_DSN",
			"NAVI_SESSION_TTL",
			"NAVI_DEMO_MODE",
			"NAVI_RATE_LIMIT",
			"NAVI_WARNING_CACHE_TTL",
		}
		for _, key := range unset {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8000 {
			t.Fatalf("expected default HTTP port 8000, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:navi.db?_foreign_keys=on" {
			t.Fatalf("unexpected default DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.SessionTTL != 24*time.Hour {
			t.Fatalf("expected default session TTL 24h, got %s", cfg.SessionTTL)
		}
		if !cfg.DemoMode {
			t.Fatalf("expected demo mode to default on")
		}
		if cfg.RateLimit != 100 {
			t.Fatalf("expected default rate limit 100, got %d", cfg.RateLimit)
		}
	})

	t.Run("parses duration, numeric and boolean fields", func(t *testing.T) {
		t.Setenv("NAVI_HTTP_PORT", "9090")
		t.Setenv("NAVI_SQLITE_DSN", "file:/tmp/navi.db")
		t.Setenv("NAVI_SESSION_TTL", "12h")
		t.Setenv("NAVI_DEMO_MODE", "false")
		t.Setenv("NAVI_RATE_LIMIT", "25")
		t.Setenv("NAVI_WARNING_CACHE_TTL", "30s")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected HTTP port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:/tmp/navi.db" {
			t.Fatalf("unexpected DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.SessionTTL != 12*time.Hour {
			t.Fatalf("expected session TTL 12h, got %s", cfg.SessionTTL)
		}
		if cfg.DemoMode {
			t.Fatalf("expected demo mode to be disabled")
		}
		if cfg.RateLimit != 25 {
			t.Fatalf("expected rate limit 25, got %d", cfg.RateLimit)
		}
		if cfg.WarningCacheTTL != 30*time.Second {
			t.Fatalf("expected warning cache TTL 30s, got %s", cfg.WarningCacheTTL)
		}
	})

	t.Run("reports invalid values together", func(t *testing.T) {
		t.Setenv("NAVI_HTTP_PORT", "-1")
		t.Setenv("NAVI_SESSION_TTL", "soon")

		_, err := Load()
		if err == nil {
			t.Fatalf("expected error for invalid values")
		}
		expected := "invalid environment variable values: NAVI_HTTP_PORT, NAVI_SESSION_TTL"
		if err.Error() != expected {
			t.Fatalf("unexpected error message: %q", err.Error())
		}
	})
}
