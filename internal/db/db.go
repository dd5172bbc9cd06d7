// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Wozus/Fc-tournament/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// Statements holds the SQL of every prepared statement, keyed by name. The
// store addresses them by name.
var Statements = map[string]string{
	"health_check": "SELECT 1",

	// Auth
	"user_by_username": "SELECT id::text, username, password_salt, password_hash FROM app_users WHERE username = $1",
	"user_by_id":       "SELECT id::text, username FROM app_users WHERE id = $1",
	"session_user_id":  "SELECT user_id::text FROM app_sessions WHERE token_hash = $1 AND expires_at > $2",
	"delete_session":   "DELETE FROM app_sessions WHERE token_hash = $1",

	// Tournaments
	"tournament_by_id": `SELECT t.id::text, t.name, t.owner_id::text, u.username, t.scoring, t.created_at
		FROM tournaments t JOIN app_users u ON u.id = t.owner_id WHERE t.id = $1`,
	"tournament_roster": "SELECT player_name FROM tournament_players WHERE tournament_id = $1 ORDER BY player_name",

	// Matches
	"matches_by_tournament": `SELECT id::text, tournament_id::text, match_no, winner, special_text, special_players,
		points_multiplier, players, created_at
		FROM matches WHERE tournament_id = $1 ORDER BY match_no`,
	"match_by_id": `SELECT id::text, tournament_id::text, match_no, winner, special_text, special_players,
		points_multiplier, players, created_at
		FROM matches WHERE tournament_id = $1 AND id = $2`,
	"last_match_no": "SELECT COALESCE(MAX(match_no), 0) FROM matches WHERE tournament_id = $1",

	// Club logos
	"club_logo": "SELECT url, updated_at FROM club_logos WHERE club_key = $1",
}

func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	for name, sql := range Statements {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
