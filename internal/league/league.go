// Package league implements tournament and match management on top of a
// Store: ownership checks, payload validation and the leaderboard read.
package league

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/Wozus/Fc-tournament/internal/apperr"
	"github.com/Wozus/Fc-tournament/internal/models"
	"github.com/Wozus/Fc-tournament/internal/scoring"
	"github.com/Wozus/Fc-tournament/internal/store"
)

// Listing bounds.
const (
	DefaultPageSize = 12
	MaxPageSize     = 50
	// MaxPage keeps the row offset within an INTEGER.
	MaxPage = math.MaxInt32 / MaxPageSize
	minPlayers      = 2
)

// Store is the persistence the service needs. *store.Store satisfies it.
type Store interface {
	CreateTournament(ctx context.Context, name, ownerID string, scoring models.Scoring) (models.Tournament, error)
	AddRoster(ctx context.Context, tournamentID string, players []string) error
	DeleteTournament(ctx context.Context, id string) error
	TournamentByID(ctx context.Context, id string) (models.Tournament, error)
	Roster(ctx context.Context, tournamentID string) ([]string, error)
	ListTournaments(ctx context.Context, query string, limit, offset int) ([]models.TournamentListItem, int, error)

	ListMatches(ctx context.Context, tournamentID string) ([]models.Match, error)
	MatchByID(ctx context.Context, tournamentID, matchID string) (models.Match, error)
	LastMatchNo(ctx context.Context, tournamentID string) (int, error)
	InsertMatch(ctx context.Context, m models.Match) (models.Match, error)
	UpdateMatch(ctx context.Context, m models.Match) (models.Match, error)
	DeleteMatch(ctx context.Context, tournamentID, matchID string) error
}

// Service holds the league operations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService returns a Service backed by s.
func NewService(s Store, logger *slog.Logger) *Service {
	return &Service{store: s, logger: logger}
}

// TournamentInput is the create-tournament payload.
type TournamentInput struct {
	Name    string         `json:"name"`
	Players []string       `json:"players"`
	Scoring models.Scoring `json:"scoring,omitempty"`
}

// ListQuery selects a page of the tournament listing.
type ListQuery struct {
	Q        string
	Page     int
	PageSize int
}

// Page is one page of the tournament listing.
type Page struct {
	Items    []models.TournamentListItem `json:"items"`
	Page     int                         `json:"page"`
	PageSize int                         `json:"pageSize"`
	Total    int                         `json:"total"`
}

// ListTournaments returns tournaments newest first. Page numbers are clamped
// to [1, MaxPage] and the page size to [1, MaxPageSize].
func (s *Service) ListTournaments(ctx context.Context, q ListQuery) (Page, error) {
	page := q.Page
	switch {
	case page < 1:
		page = 1
	case page > MaxPage:
		page = MaxPage
	}
	size := q.PageSize
	switch {
	case size == 0:
		size = DefaultPageSize
	case size < 1:
		size = 1
	case size > MaxPageSize:
		size = MaxPageSize
	}

	items, total, err := s.store.ListTournaments(ctx, strings.TrimSpace(q.Q), size, (page-1)*size)
	if err != nil {
		return Page{}, err
	}
	return Page{Items: items, Page: page, PageSize: size, Total: total}, nil
}

// CreateTournament creates a tournament owned by owner. The tournament row
// and the roster are written in two steps; if the roster write fails the
// tournament row is deleted again.
func (s *Service) CreateTournament(ctx context.Context, owner models.User, in TournamentInput) (models.Tournament, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Tournament{}, apperr.Validationf("tournament name is required")
	}

	variant := in.Scoring
	if variant == "" {
		variant = models.ScoringDerived
	}
	if !variant.Valid() {
		return models.Tournament{}, apperr.Validationf("unknown scoring %q", in.Scoring)
	}

	players := make([]string, 0, len(in.Players))
	seen := make(map[string]struct{}, len(in.Players))
	for _, p := range in.Players {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			return models.Tournament{}, apperr.Validationf("duplicate player %q", p)
		}
		seen[p] = struct{}{}
		players = append(players, p)
	}
	if len(players) < minPlayers {
		return models.Tournament{}, apperr.Validationf("add at least %d players", minPlayers)
	}

	t, err := s.store.CreateTournament(ctx, name, owner.ID, variant)
	if err != nil {
		return models.Tournament{}, err
	}
	if err := s.store.AddRoster(ctx, t.ID, players); err != nil {
		if delErr := s.store.DeleteTournament(context.WithoutCancel(ctx), t.ID); delErr != nil {
			s.logger.Error("Failed to remove tournament after roster error",
				"tournament_id", t.ID, "error", delErr)
		}
		return models.Tournament{}, err
	}

	t.OwnerUsername = owner.Username
	t.Players = players
	s.logger.Info("Tournament created", "tournament_id", t.ID, "owner", owner.Username, "players", len(players))
	return t, nil
}

// Tournament returns a tournament with its roster.
func (s *Service) Tournament(ctx context.Context, id string) (models.Tournament, error) {
	t, err := s.tournament(ctx, id)
	if err != nil {
		return models.Tournament{}, err
	}
	if t.Players, err = s.store.Roster(ctx, t.ID); err != nil {
		return models.Tournament{}, err
	}
	return t, nil
}

// DeleteTournament removes a tournament owned by user, with its roster and
// matches.
func (s *Service) DeleteTournament(ctx context.Context, user models.User, id string) error {
	t, err := s.owned(ctx, user, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteTournament(ctx, t.ID); err != nil {
		return err
	}
	s.logger.Info("Tournament deleted", "tournament_id", t.ID, "owner", user.Username)
	return nil
}

// Leaderboard aggregates the tournament's matches from scratch.
func (s *Service) Leaderboard(ctx context.Context, id string) (scoring.Leaderboard, error) {
	t, err := s.Tournament(ctx, id)
	if err != nil {
		return scoring.Leaderboard{}, err
	}
	matches, err := s.store.ListMatches(ctx, t.ID)
	if err != nil {
		return scoring.Leaderboard{}, err
	}
	return scoring.Aggregate(t.Scoring, t.Players, matches), nil
}

func (s *Service) tournament(ctx context.Context, id string) (models.Tournament, error) {
	if !validID(id) {
		return models.Tournament{}, errTournamentNotFound
	}
	t, err := s.store.TournamentByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Tournament{}, errTournamentNotFound
	}
	return t, err
}

// owned loads a tournament and checks that user owns it.
func (s *Service) owned(ctx context.Context, user models.User, id string) (models.Tournament, error) {
	t, err := s.tournament(ctx, id)
	if err != nil {
		return models.Tournament{}, err
	}
	if t.OwnerID != user.ID {
		return models.Tournament{}, apperr.Forbidden("only the tournament owner can change it")
	}
	return t, nil
}

var (
	errTournamentNotFound = apperr.NotFoundf("tournament not found")
	errMatchNotFound      = apperr.NotFoundf("match not found")
)

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
