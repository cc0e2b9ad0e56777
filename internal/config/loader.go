package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures environment driven configuration values for the planner service.
type Config struct {
	HTTPPort        int
	SQLiteDSN       string
	SessionTTL      time.Duration
	DemoMode        bool
	RateLimit       int
	WarningCacheTTL time.Duration
}

// Load parses configuration values from the current process environment. A
// .env file in the working directory is read first when present; real
// environment variables win over file entries.
//
// The loader applies defaults for every field, so an empty environment yields
// a runnable demo configuration.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:        8000,
		SQLiteDSN:       "file:navi.db?_foreign_keys=on",
		SessionTTL:      24 * time.Hour,
		DemoMode:        true,
		RateLimit:       100,
		WarningCacheTTL: time.Minute,
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("NAVI_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "NAVI_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("NAVI_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if ttlValue := strings.TrimSpace(os.Getenv("NAVI_SESSION_TTL")); ttlValue != "" {
		ttl, err := time.ParseDuration(ttlValue)
		if err != nil || ttl <= 0 {
			invalid = append(invalid, "NAVI_SESSION_TTL")
		} else {
			cfg.SessionTTL = ttl
		}
	}

	if demoValue := strings.TrimSpace(os.Getenv("NAVI_DEMO_MODE")); demoValue != "" {
		demo, err := strconv.ParseBool(demoValue)
		if err != nil {
			invalid = append(invalid, "NAVI_DEMO_MODE")
		} else {
			cfg.DemoMode = demo
		}
	}

	if limitValue := strings.TrimSpace(os.Getenv("NAVI_RATE_LIMIT")); limitValue != "" {
		limit, err := strconv.Atoi(limitValue)
		if err != nil || limit < 0 {
			invalid = append(invalid, "NAVI_RATE_LIMIT")
		} else {
			cfg.RateLimit = limit
		}
	}

	if ttlValue := strings.TrimSpace(os.Getenv("NAVI_WARNING_CACHE_TTL")); ttlValue != "" {
		ttl, err := time.ParseDuration(ttlValue)
		if err != nil || ttl < 0 {
			invalid = append(invalid, "NAVI_WARNING_CACHE_TTL")
		} else {
			cfg.WarningCacheTTL = ttl
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
