// Package config provides centralized configuration loaded from environment
// variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Table names, as created by internal/db/schema.sql
// --------------------------------------------------------------------------

const (
	UsersTable             = "app_users"
	SessionsTable          = "app_sessions"
	TournamentsTable       = "tournaments"
	TournamentPlayersTable = "tournament_players"
	MatchesTable           = "matches"
	ClubLogosTable         = "club_logos"
)

// SessionCookie is the name of the cookie carrying the raw session token.
const SessionCookie = "fife_session"

// SessionTTL is how long a freshly minted session stays valid.
const SessionTTL = 30 * 24 * time.Hour

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	LogLevel    string

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// TheSportsDB (club logos)
	SportsDBAPIKey            string
	SportsDBBaseURL           string
	SportsDBRequestsPerMinute int
	ClubLogosFile             string // optional JSON map of club name -> logo URL

	// Maintenance
	LogoCleanupInterval  time.Duration
	SessionPurgeInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", "")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8080)),
		Environment: envOr("ENVIRONMENT", "development"),
		LogLevel:    envOr("LOG_LEVEL", "info"),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 120),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		SportsDBAPIKey:            envOr("SPORTSDB_API_KEY", "123"),
		SportsDBBaseURL:           envOr("SPORTSDB_BASE_URL", "https://www.thesportsdb.com/api/v1/json"),
		SportsDBRequestsPerMinute: envInt("SPORTSDB_REQUESTS_PER_MINUTE", 30),
		ClubLogosFile:             envOr("CLUB_LOGOS_FILE", ""),

		LogoCleanupInterval:  time.Duration(envInt("LOGO_CLEANUP_INTERVAL_MINUTES", 360)) * time.Minute,
		SessionPurgeInterval: time.Duration(envInt("SESSION_PURGE_INTERVAL_MINUTES", 0)) * time.Minute,
	}, nil
}

// IsProduction returns true if running in production environment.
// Session cookies are only marked Secure in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
