package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is empty")
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fife")
	t.Setenv("PORT", "9000")
	t.Setenv("API_PORT", "")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("SESSION_PURGE_INTERVAL_MINUTES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIPort != 9000 {
		t.Errorf("APIPort = %d, want 9000", cfg.APIPort)
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://b.example" {
		t.Errorf("CORSAllowOrigins = %v", cfg.CORSAllowOrigins)
	}
	if cfg.RateLimitEnabled {
		t.Error("RateLimitEnabled should be false")
	}
	if cfg.SessionPurgeInterval != 0 {
		t.Errorf("SessionPurgeInterval = %v, want disabled", cfg.SessionPurgeInterval)
	}
	if cfg.LogoCleanupInterval != 6*time.Hour {
		t.Errorf("LogoCleanupInterval = %v", cfg.LogoCleanupInterval)
	}
	if cfg.SportsDBAPIKey != "123" {
		t.Errorf("SportsDBAPIKey = %q", cfg.SportsDBAPIKey)
	}
}

func TestIsProduction(t *testing.T) {
	if (&Config{Environment: "development"}).IsProduction() {
		t.Error("development reported as production")
	}
	if !(&Config{Environment: "production"}).IsProduction() {
		t.Error("production not detected")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := (&Config{LogLevel: in}).SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
