// Package memstore is an in-memory stand-in for the Postgres store, used by
// tests of the packages built on top of it. It honours the same unique keys
// and returns the same sentinel errors.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Wozus/Fc-tournament/internal/models"
	"github.com/Wozus/Fc-tournament/internal/store"
)

type session struct {
	userID    string
	expiresAt time.Time
}

type logo struct {
	url       string
	updatedAt time.Time
}

// Store keeps every table in maps.
type Store struct {
	mu          sync.Mutex
	users       map[string]models.Credentials // by id
	sessions    map[string]session            // by token hash
	tournaments map[string]models.Tournament
	rosters     map[string][]string
	matches     map[string]models.Match
	logos       map[string]logo
	clock       time.Time

	// RosterErr, when set, makes AddRoster fail.
	RosterErr error
	// DeleteSessionErr, when set, makes DeleteSession fail.
	DeleteSessionErr error
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		users:       map[string]models.Credentials{},
		sessions:    map[string]session{},
		tournaments: map[string]models.Tournament{},
		rosters:     map[string][]string{},
		matches:     map[string]models.Match{},
		logos:       map[string]logo{},
		clock:       time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

// tick advances the creation clock so created_at ordering is stable.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

// --------------------------------------------------------------------------
// Users and sessions
// --------------------------------------------------------------------------

func (s *Store) CreateUser(_ context.Context, username, salt, hash string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.users {
		if c.Username == username {
			return models.User{}, fmt.Errorf("insert user: %w", store.ErrDuplicate)
		}
	}
	u := models.User{ID: uuid.NewString(), Username: username}
	s.users[u.ID] = models.Credentials{User: u, PasswordSalt: salt, PasswordHash: hash}
	return u, nil
}

func (s *Store) UserByUsername(_ context.Context, username string) (models.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.users {
		if c.Username == username {
			return c, nil
		}
	}
	return models.Credentials{}, store.ErrNotFound
}

func (s *Store) UserByID(_ context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return c.User, nil
}

func (s *Store) CreateSession(_ context.Context, userID, tokenHash string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[tokenHash]; ok {
		return store.ErrDuplicate
	}
	s.sessions[tokenHash] = session{userID: userID, expiresAt: expiresAt}
	return nil
}

func (s *Store) SessionUserID(_ context.Context, tokenHash string, now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[tokenHash]
	if !ok || !sess.expiresAt.After(now) {
		return "", store.ErrNotFound
	}
	return sess.userID, nil
}

func (s *Store) DeleteSession(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteSessionErr != nil {
		return s.DeleteSessionErr
	}
	delete(s.sessions, tokenHash)
	return nil
}

func (s *Store) PurgeSessions(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for hash, sess := range s.sessions {
		if sess.expiresAt.Before(cutoff) {
			delete(s.sessions, hash)
			n++
		}
	}
	return n, nil
}

// SessionCount reports how many session rows exist.
func (s *Store) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// --------------------------------------------------------------------------
// Tournaments
// --------------------------------------------------------------------------

func (s *Store) CreateTournament(_ context.Context, name, ownerID string, scoring models.Scoring) (models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[ownerID]; !ok {
		return models.Tournament{}, errors.New("insert tournament: owner does not exist")
	}
	t := models.Tournament{ID: uuid.NewString(), Name: name, OwnerID: ownerID, Scoring: scoring, CreatedAt: s.tick()}
	s.tournaments[t.ID] = t
	return t, nil
}

func (s *Store) AddRoster(_ context.Context, tournamentID string, players []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RosterErr != nil {
		return s.RosterErr
	}
	s.rosters[tournamentID] = append([]string(nil), players...)
	return nil
}

func (s *Store) DeleteTournament(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tournaments, id)
	delete(s.rosters, id)
	for mid, m := range s.matches {
		if m.TournamentID == id {
			delete(s.matches, mid)
		}
	}
	return nil
}

func (s *Store) TournamentByID(_ context.Context, id string) (models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tournaments[id]
	if !ok {
		return models.Tournament{}, fmt.Errorf("get tournament %s: %w", id, store.ErrNotFound)
	}
	t.OwnerUsername = s.users[t.OwnerID].Username
	return t, nil
}

func (s *Store) Roster(_ context.Context, tournamentID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := append([]string{}, s.rosters[tournamentID]...)
	sort.Strings(r)
	return r, nil
}

func (s *Store) ListTournaments(_ context.Context, query string, limit, offset int) ([]models.TournamentListItem, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(query)
	var all []models.TournamentListItem
	for _, t := range s.tournaments {
		owner := s.users[t.OwnerID].Username
		if q != "" && !strings.Contains(strings.ToLower(t.Name), q) && !strings.Contains(strings.ToLower(owner), q) {
			continue
		}
		all = append(all, models.TournamentListItem{ID: t.ID, Name: t.Name, OwnerUsername: owner, CreatedAt: t.CreatedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	items := []models.TournamentListItem{}
	if offset < 0 || limit < 1 {
		return items, len(all), nil
	}
	for i := offset; i < len(all) && i-offset < limit; i++ {
		items = append(items, all[i])
	}
	return items, len(all), nil
}

// TournamentCount reports how many tournament rows exist.
func (s *Store) TournamentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tournaments)
}

// StoredRoster returns the roster rows of a tournament in insertion order.
func (s *Store) StoredRoster(tournamentID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.rosters[tournamentID]...)
}

// --------------------------------------------------------------------------
// Matches
// --------------------------------------------------------------------------

func (s *Store) ListMatches(_ context.Context, tournamentID string) ([]models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Match{}
	for _, m := range s.matches {
		if m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].No < out[j].No })
	return out, nil
}

func (s *Store) MatchByID(_ context.Context, tournamentID, matchID string) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[matchID]
	if !ok || m.TournamentID != tournamentID {
		return models.Match{}, store.ErrNotFound
	}
	return m, nil
}

func (s *Store) LastMatchNo(_ context.Context, tournamentID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	last := 0
	for _, m := range s.matches {
		if m.TournamentID == tournamentID && m.No > last {
			last = m.No
		}
	}
	return last, nil
}

func (s *Store) numberTaken(m models.Match) bool {
	for _, other := range s.matches {
		if other.TournamentID == m.TournamentID && other.No == m.No && other.ID != m.ID {
			return true
		}
	}
	return false
}

func (s *Store) InsertMatch(_ context.Context, m models.Match) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.numberTaken(m) {
		return models.Match{}, fmt.Errorf("insert match: %w", store.ErrDuplicate)
	}
	m.ID = uuid.NewString()
	m.CreatedAt = s.tick()
	s.matches[m.ID] = m
	return m, nil
}

func (s *Store) UpdateMatch(_ context.Context, m models.Match) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.matches[m.ID]
	if !ok || current.TournamentID != m.TournamentID {
		return models.Match{}, store.ErrNotFound
	}
	if s.numberTaken(m) {
		return models.Match{}, fmt.Errorf("update match: %w", store.ErrDuplicate)
	}
	m.CreatedAt = current.CreatedAt
	s.matches[m.ID] = m
	return m, nil
}

func (s *Store) DeleteMatch(_ context.Context, tournamentID, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.matches[matchID]; ok && m.TournamentID == tournamentID {
		delete(s.matches, matchID)
	}
	return nil
}

// MatchCount reports how many match rows exist.
func (s *Store) MatchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}

// --------------------------------------------------------------------------
// Club logos
// --------------------------------------------------------------------------

func (s *Store) ClubLogo(_ context.Context, key string) (string, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.logos[key]
	if !ok {
		return "", time.Time{}, store.ErrNotFound
	}
	return l.url, l.updatedAt, nil
}

func (s *Store) SaveClubLogo(_ context.Context, key, _, url, _ string) error {
	return s.PutClubLogo(key, url, time.Now())
}

// PutClubLogo stores a cache row with an explicit timestamp.
func (s *Store) PutClubLogo(key, url string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logos[key] = logo{url: url, updatedAt: updatedAt}
	return nil
}

func (s *Store) PurgeClubLogos(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for key, l := range s.logos {
		if l.updatedAt.Before(cutoff) {
			delete(s.logos, key)
			n++
		}
	}
	return n, nil
}
