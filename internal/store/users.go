package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Wozus/Fc-tournament/internal/models"
)

// CreateUser inserts a user. A taken username yields ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, username, salt, hash string) (models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx, `
		INSERT INTO app_users (username, password_salt, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id::text, username`,
		username, salt, hash,
	).Scan(&u.ID, &u.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", classify(err))
	}
	return u, nil
}

// UserByUsername returns the credentials row for a normalized username.
func (s *Store) UserByUsername(ctx context.Context, username string) (models.Credentials, error) {
	var c models.Credentials
	err := s.pool.QueryRow(ctx, "user_by_username", username).
		Scan(&c.ID, &c.Username, &c.PasswordSalt, &c.PasswordHash)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("get user %q: %w", username, classify(err))
	}
	return c, nil
}

// UserByID returns the public view of a user.
func (s *Store) UserByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	if err := s.pool.QueryRow(ctx, "user_by_id", id).Scan(&u.ID, &u.Username); err != nil {
		return models.User{}, fmt.Errorf("get user %s: %w", id, classify(err))
	}
	return u, nil
}

// CreateSession stores a token digest for userID until expiresAt.
func (s *Store) CreateSession(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO app_sessions (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)`,
		userID, tokenHash, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", classify(err))
	}
	return nil
}

// SessionUserID returns the owner of a session that is still valid at now.
// Expired and unknown sessions both yield ErrNotFound.
func (s *Store) SessionUserID(ctx context.Context, tokenHash string, now time.Time) (string, error) {
	var userID string
	if err := s.pool.QueryRow(ctx, "session_user_id", tokenHash, now).Scan(&userID); err != nil {
		return "", fmt.Errorf("get session: %w", classify(err))
	}
	return userID, nil
}

// DeleteSession removes a session by digest. Deleting nothing is not an error.
func (s *Store) DeleteSession(ctx context.Context, tokenHash string) error {
	if _, err := s.pool.Exec(ctx, "delete_session", tokenHash); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeSessions deletes sessions that expired before cutoff.
func (s *Store) PurgeSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM app_sessions WHERE expires_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
