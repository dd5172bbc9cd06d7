package league

import (
	"context"
	"errors"

	"github.com/Wozus/Fc-tournament/internal/apperr"
	"github.com/Wozus/Fc-tournament/internal/models"
	"github.com/Wozus/Fc-tournament/internal/store"
)

// Matches lists a tournament's matches by ascending match number.
func (s *Service) Matches(ctx context.Context, tournamentID string) ([]models.Match, error) {
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return s.store.ListMatches(ctx, t.ID)
}

// NextMatchNo is the number an auto-numbered match would get.
func (s *Service) NextMatchNo(ctx context.Context, tournamentID string) (int, error) {
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return 0, err
	}
	last, err := s.store.LastMatchNo(ctx, t.ID)
	if err != nil {
		return 0, err
	}
	return last + 1, nil
}

// Match returns one match of a tournament.
func (s *Service) Match(ctx context.Context, tournamentID, matchID string) (models.Match, error) {
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return models.Match{}, err
	}
	return s.match(ctx, t.ID, matchID)
}

// CreateMatch validates and records a match in a tournament owned by user.
// A missing or non-positive number takes the next free one.
func (s *Service) CreateMatch(ctx context.Context, user models.User, tournamentID string, in MatchInput) (models.Match, error) {
	t, err := s.owned(ctx, user, tournamentID)
	if err != nil {
		return models.Match{}, err
	}
	roster, err := s.store.Roster(ctx, t.ID)
	if err != nil {
		return models.Match{}, err
	}
	m, err := normalizeMatch(t.Scoring, roster, in)
	if err != nil {
		return models.Match{}, err
	}

	m.TournamentID = t.ID
	if m.No == 0 {
		last, err := s.store.LastMatchNo(ctx, t.ID)
		if err != nil {
			return models.Match{}, err
		}
		m.No = last + 1
	}

	saved, err := s.store.InsertMatch(ctx, m)
	if errors.Is(err, store.ErrDuplicate) {
		return models.Match{}, apperr.Conflictf("match number %d already exists", m.No)
	}
	if err != nil {
		return models.Match{}, err
	}
	s.logger.Info("Match recorded", "tournament_id", t.ID, "match_id", saved.ID, "no", saved.No)
	return saved, nil
}

// UpdateMatch replaces a match with a revalidated payload. A missing or
// non-positive number keeps the current one.
func (s *Service) UpdateMatch(ctx context.Context, user models.User, tournamentID, matchID string, in MatchInput) (models.Match, error) {
	t, err := s.owned(ctx, user, tournamentID)
	if err != nil {
		return models.Match{}, err
	}
	current, err := s.match(ctx, t.ID, matchID)
	if err != nil {
		return models.Match{}, err
	}
	roster, err := s.store.Roster(ctx, t.ID)
	if err != nil {
		return models.Match{}, err
	}
	m, err := normalizeMatch(t.Scoring, roster, in)
	if err != nil {
		return models.Match{}, err
	}

	m.ID = current.ID
	m.TournamentID = t.ID
	m.CreatedAt = current.CreatedAt
	if m.No == 0 {
		m.No = current.No
	}

	saved, err := s.store.UpdateMatch(ctx, m)
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return models.Match{}, apperr.Conflictf("match number %d already exists", m.No)
	case errors.Is(err, store.ErrNotFound):
		return models.Match{}, errMatchNotFound
	case err != nil:
		return models.Match{}, err
	}
	return saved, nil
}

// DeleteMatch removes a match from a tournament owned by user. Deleting a
// match that is already gone succeeds.
func (s *Service) DeleteMatch(ctx context.Context, user models.User, tournamentID, matchID string) error {
	t, err := s.owned(ctx, user, tournamentID)
	if err != nil {
		return err
	}
	if !validID(matchID) {
		return nil
	}
	return s.store.DeleteMatch(ctx, t.ID, matchID)
}

func (s *Service) match(ctx context.Context, tournamentID, matchID string) (models.Match, error) {
	if !validID(matchID) {
		return models.Match{}, errMatchNotFound
	}
	m, err := s.store.MatchByID(ctx, tournamentID, matchID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Match{}, errMatchNotFound
	}
	return m, err
}
