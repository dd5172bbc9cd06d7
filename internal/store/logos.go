package store

import (
	"context"
	"fmt"
	"time"
)

// ClubLogo returns the cached logo URL for a club key and when it was stored.
func (s *Store) ClubLogo(ctx context.Context, key string) (string, time.Time, error) {
	var (
		url       string
		updatedAt time.Time
	)
	if err := s.pool.QueryRow(ctx, "club_logo", key).Scan(&url, &updatedAt); err != nil {
		return "", time.Time{}, fmt.Errorf("get club logo %q: %w", key, classify(err))
	}
	return url, updatedAt, nil
}

// SaveClubLogo upserts the cached logo URL for a club key.
func (s *Store) SaveClubLogo(ctx context.Context, key, name, url, source string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO club_logos (club_key, club_name, url, source, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (club_key) DO UPDATE
		SET club_name = EXCLUDED.club_name, url = EXCLUDED.url,
			source = EXCLUDED.source, updated_at = EXCLUDED.updated_at`,
		key, name, url, source,
	)
	if err != nil {
		return fmt.Errorf("save club logo %q: %w", key, err)
	}
	return nil
}

// PurgeClubLogos deletes cache rows stored before cutoff.
func (s *Store) PurgeClubLogos(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM club_logos WHERE updated_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge club logos: %w", err)
	}
	return tag.RowsAffected(), nil
}
