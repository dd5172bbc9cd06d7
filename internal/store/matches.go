package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Wozus/Fc-tournament/internal/models"
)

func scanMatch(row pgx.Row) (models.Match, error) {
	var m models.Match
	err := row.Scan(
		&m.ID, &m.TournamentID, &m.No, &m.Winner, &m.SpecialText,
		&m.SpecialPlayers, &m.PointsMultiplier, &m.Players, &m.CreatedAt,
	)
	if m.SpecialPlayers == nil {
		m.SpecialPlayers = []string{}
	}
	if m.Players == nil {
		m.Players = map[string]models.PlayerStats{}
	}
	return m, err
}

// ListMatches returns a tournament's matches ordered by match number.
func (s *Store) ListMatches(ctx context.Context, tournamentID string) ([]models.Match, error) {
	rows, err := s.pool.Query(ctx, "matches_by_tournament", tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	matches := []models.Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// MatchByID returns one match of a tournament.
func (s *Store) MatchByID(ctx context.Context, tournamentID, matchID string) (models.Match, error) {
	m, err := scanMatch(s.pool.QueryRow(ctx, "match_by_id", tournamentID, matchID))
	if err != nil {
		return models.Match{}, fmt.Errorf("get match %s: %w", matchID, classify(err))
	}
	return m, nil
}

// LastMatchNo returns the highest match number in a tournament, or 0.
func (s *Store) LastMatchNo(ctx context.Context, tournamentID string) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, "last_match_no", tournamentID).Scan(&n); err != nil {
		return 0, fmt.Errorf("last match number: %w", err)
	}
	return n, nil
}

// InsertMatch stores a validated match. A clashing match number yields
// ErrDuplicate.
func (s *Store) InsertMatch(ctx context.Context, m models.Match) (models.Match, error) {
	saved, err := scanMatch(s.pool.QueryRow(ctx, `
		INSERT INTO matches (tournament_id, match_no, winner, special_text, special_players, points_multiplier, players)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id::text, tournament_id::text, match_no, winner, special_text, special_players,
			points_multiplier, players, created_at`,
		m.TournamentID, m.No, m.Winner, m.SpecialText, m.SpecialPlayers, m.PointsMultiplier, m.Players,
	))
	if err != nil {
		return models.Match{}, fmt.Errorf("insert match: %w", classify(err))
	}
	return saved, nil
}

// UpdateMatch replaces every editable field of a match.
func (s *Store) UpdateMatch(ctx context.Context, m models.Match) (models.Match, error) {
	saved, err := scanMatch(s.pool.QueryRow(ctx, `
		UPDATE matches
		SET match_no = $3, winner = $4, special_text = $5, special_players = $6,
			points_multiplier = $7, players = $8
		WHERE tournament_id = $1 AND id = $2
		RETURNING id::text, tournament_id::text, match_no, winner, special_text, special_players,
			points_multiplier, players, created_at`,
		m.TournamentID, m.ID, m.No, m.Winner, m.SpecialText, m.SpecialPlayers, m.PointsMultiplier, m.Players,
	))
	if err != nil {
		return models.Match{}, fmt.Errorf("update match %s: %w", m.ID, classify(err))
	}
	return saved, nil
}

// DeleteMatch removes a match from a tournament. Deleting nothing is not an
// error.
func (s *Store) DeleteMatch(ctx context.Context, tournamentID, matchID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM matches WHERE tournament_id = $1 AND id = $2`, tournamentID, matchID)
	if err != nil {
		return fmt.Errorf("delete match %s: %w", matchID, err)
	}
	return nil
}
