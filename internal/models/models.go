// Package models holds the domain types shared by the store, the league
// service, score aggregation and the HTTP layer.
package models

import "time"

// User is the public view of an account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Credentials is a user row including the password material.
type Credentials struct {
	User
	PasswordSalt string
	PasswordHash string
}

// Scoring selects how per-player points of a tournament are obtained.
type Scoring string

const (
	// ScoringDerived computes points from goals, crossbars, black posts and wins.
	ScoringDerived Scoring = "derived"
	// ScoringPrecomputed sums the points stored with each match.
	ScoringPrecomputed Scoring = "precomputed"
)

// Valid reports whether s is a known variant.
func (s Scoring) Valid() bool {
	return s == ScoringDerived || s == ScoringPrecomputed
}

// Tournament is a tournament with its fixed roster.
type Tournament struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	OwnerID       string    `json:"ownerId"`
	OwnerUsername string    `json:"ownerUsername"`
	Scoring       Scoring   `json:"scoring"`
	Players       []string  `json:"players"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TournamentListItem is the row shape of the tournament listing.
type TournamentListItem struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	OwnerUsername string    `json:"ownerUsername"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PlayerStats is one player's line in a match. Club and Host belong to the
// derived variant; Points is only set for precomputed tournaments.
type PlayerStats struct {
	Goals      int      `json:"goals"`
	Crossbars  int      `json:"crossbars"`
	BlackPosts int      `json:"blackPosts"`
	Club       string   `json:"club,omitempty"`
	Host       bool     `json:"host,omitempty"`
	Points     *float64 `json:"points,omitempty"`
}

// Match is a recorded game inside a tournament.
type Match struct {
	ID               string                 `json:"id"`
	TournamentID     string                 `json:"tournamentId"`
	No               int                    `json:"no"`
	Winner           *string                `json:"winner"`
	SpecialText      *string                `json:"specialText"`
	SpecialPlayers   []string               `json:"specialPlayers"`
	PointsMultiplier float64                `json:"pointsMultiplier"`
	Players          map[string]PlayerStats `json:"players"`
	CreatedAt        time.Time              `json:"createdAt"`
}

// WinnerName returns the winner or "" when the match has none.
func (m Match) WinnerName() string {
	if m.Winner == nil {
		return ""
	}
	return *m.Winner
}

// PlayerTotals are cumulative per-player figures over a tournament.
type PlayerTotals struct {
	Goals       int     `json:"goals"`
	Crossbars   int     `json:"crossbars"`
	BlackPosts  int     `json:"blackPosts"`
	Wins        int     `json:"wins"`
	TotalPoints float64 `json:"totalPoints"`
}
