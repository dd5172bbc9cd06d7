package store

import (
	"context"
	"fmt"

	"github.com/Wozus/Fc-tournament/internal/models"
)

// CreateTournament inserts the tournament row only. The roster is added
// separately with AddRoster.
func (s *Store) CreateTournament(ctx context.Context, name, ownerID string, scoring models.Scoring) (models.Tournament, error) {
	t := models.Tournament{Name: name, OwnerID: ownerID, Scoring: scoring}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO tournaments (name, owner_id, scoring)
		VALUES ($1, $2, $3)
		RETURNING id::text, created_at`,
		name, ownerID, string(scoring),
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return models.Tournament{}, fmt.Errorf("insert tournament: %w", classify(err))
	}
	return t, nil
}

// AddRoster inserts all players of a tournament in one statement.
func (s *Store) AddRoster(ctx context.Context, tournamentID string, players []string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO tournament_players (tournament_id, player_name)
		SELECT $1, unnest($2::text[])`,
		tournamentID, players,
	)
	if err != nil {
		return fmt.Errorf("insert roster: %w", classify(err))
	}
	return nil
}

// DeleteTournament removes a tournament; roster and matches cascade.
func (s *Store) DeleteTournament(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM tournaments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tournament %s: %w", id, err)
	}
	return nil
}

// TournamentByID returns the tournament without its roster.
func (s *Store) TournamentByID(ctx context.Context, id string) (models.Tournament, error) {
	var (
		t       models.Tournament
		scoring string
	)
	err := s.pool.QueryRow(ctx, "tournament_by_id", id).
		Scan(&t.ID, &t.Name, &t.OwnerID, &t.OwnerUsername, &scoring, &t.CreatedAt)
	if err != nil {
		return models.Tournament{}, fmt.Errorf("get tournament %s: %w", id, classify(err))
	}
	t.Scoring = models.Scoring(scoring)
	return t, nil
}

// Roster returns the tournament's player names in ascending order.
func (s *Store) Roster(ctx context.Context, tournamentID string) ([]string, error) {
	rows, err := s.pool.Query(ctx, "tournament_roster", tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get roster: %w", err)
	}
	defer rows.Close()

	players := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan roster: %w", err)
		}
		players = append(players, name)
	}
	return players, rows.Err()
}

// ListTournaments returns a page of tournaments, newest first, optionally
// filtered by a case-insensitive match on name or owner username, and the
// total number of matching rows.
func (s *Store) ListTournaments(ctx context.Context, query string, limit, offset int) ([]models.TournamentListItem, int, error) {
	pattern := ""
	if query != "" {
		pattern = "%" + escapeLike(query) + "%"
	}

	var total int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM tournaments t JOIN app_users u ON u.id = t.owner_id
		WHERE $1 = '' OR t.name ILIKE $1 OR u.username ILIKE $1`,
		pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count tournaments: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT t.id::text, t.name, u.username, t.created_at
		FROM tournaments t JOIN app_users u ON u.id = t.owner_id
		WHERE $1 = '' OR t.name ILIKE $1 OR u.username ILIKE $1
		ORDER BY t.created_at DESC
		LIMIT $2 OFFSET $3`,
		pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list tournaments: %w", err)
	}
	defer rows.Close()

	items := []models.TournamentListItem{}
	for rows.Next() {
		var it models.TournamentListItem
		if err := rows.Scan(&it.ID, &it.Name, &it.OwnerUsername, &it.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan tournament: %w", err)
		}
		items = append(items, it)
	}
	return items, total, rows.Err()
}
