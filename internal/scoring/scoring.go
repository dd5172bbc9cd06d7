// Package scoring folds a tournament's match list into per-player and
// tournament-wide totals. Everything here is pure and recomputed on every
// read; nothing is cached or persisted.
package scoring

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Wozus/Fc-tournament/internal/models"
)

// Point weights of the derived variant.
const (
	GoalPoints      = 1
	CrossbarPoints  = 2
	BlackPostPoints = 3
	WinPoints       = 3
)

// Overall is the sum of all displayed players' totals.
type Overall struct {
	Goals      int     `json:"goals"`
	Crossbars  int     `json:"crossbars"`
	BlackPosts int     `json:"blackPosts"`
	Wins       int     `json:"wins"`
	Points     float64 `json:"points"`
}

// Row is one leaderboard line.
type Row struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	models.PlayerTotals
}

// Leaderboard is the full aggregation result for a tournament.
type Leaderboard struct {
	Scoring models.Scoring                 `json:"scoring"`
	Players []string                       `json:"players"`
	Totals  map[string]models.PlayerTotals `json:"totals"`
	Overall Overall                        `json:"overall"`
	Ranking []Row                          `json:"ranking"`
}

// BasePoints is the derived-variant score of one match line before any
// multiplier.
func BasePoints(s models.PlayerStats, isWinner bool) float64 {
	pts := s.Goals*GoalPoints + s.Crossbars*CrossbarPoints + s.BlackPosts*BlackPostPoints
	if isWinner {
		pts += WinPoints
	}
	return float64(pts)
}

// PlayerMultiplier returns the factor applied to player's points in m. The
// match multiplier only reaches listed special players, and only when it
// exceeds 1.
func PlayerMultiplier(m models.Match, player string) float64 {
	mult := m.PointsMultiplier
	if math.IsNaN(mult) || math.IsInf(mult, 0) || mult <= 1 {
		return 1
	}
	for _, p := range m.SpecialPlayers {
		if p == player {
			return mult
		}
	}
	return 1
}

// MatchPoints returns player's points for a single match under variant.
func MatchPoints(variant models.Scoring, m models.Match, player string, s models.PlayerStats) float64 {
	if variant == models.ScoringPrecomputed {
		if s.Points == nil {
			return 0
		}
		return *s.Points
	}
	return BasePoints(s, m.WinnerName() == player) * PlayerMultiplier(m, player)
}

// Totals accumulates per-player totals over matches. The declared winner of
// a match gets one win even without a stats line in that match.
func Totals(variant models.Scoring, matches []models.Match) map[string]models.PlayerTotals {
	acc := make(map[string]models.PlayerTotals)
	for _, m := range matches {
		if w := m.WinnerName(); w != "" {
			t := acc[w]
			t.Wins++
			acc[w] = t
		}
		for name, s := range m.Players {
			t := acc[name]
			t.Goals += s.Goals
			t.Crossbars += s.Crossbars
			t.BlackPosts += s.BlackPosts
			t.TotalPoints += MatchPoints(variant, m, name, s)
			acc[name] = t
		}
	}
	return acc
}

// ResolveRoster returns the display set of players: the stored roster when
// present, otherwise every name and winner seen in matches in Polish
// alphabetical order.
func ResolveRoster(roster []string, matches []models.Match) []string {
	if len(roster) > 0 {
		return roster
	}
	seen := make(map[string]struct{})
	for _, m := range matches {
		for name := range m.Players {
			seen[name] = struct{}{}
		}
		if w := m.WinnerName(); w != "" {
			seen[w] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	SortNames(names)
	return names
}

// SortNames sorts names in place using Polish collation.
func SortNames(names []string) {
	c := collate.New(language.Polish)
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})
}

// Aggregate computes the leaderboard for a tournament.
func Aggregate(variant models.Scoring, roster []string, matches []models.Match) Leaderboard {
	if !variant.Valid() {
		variant = models.ScoringDerived
	}
	totals := Totals(variant, matches)
	players := ResolveRoster(roster, matches)

	var overall Overall
	rows := make([]Row, 0, len(players))
	for _, p := range players {
		t := totals[p]
		overall.Goals += t.Goals
		overall.Crossbars += t.Crossbars
		overall.BlackPosts += t.BlackPosts
		overall.Wins += t.Wins
		overall.Points += t.TotalPoints
		rows = append(rows, Row{Player: p, PlayerTotals: t})
	}

	return Leaderboard{
		Scoring: variant,
		Players: players,
		Totals:  totals,
		Overall: overall,
		Ranking: rank(rows),
	}
}

// rank orders rows by points, wins and goals, then by name, and assigns
// shared ranks to exact ties.
func rank(rows []Row) []Row {
	c := collate.New(language.Polish)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Goals != b.Goals {
			return a.Goals > b.Goals
		}
		return c.CompareString(a.Player, b.Player) < 0
	})
	for i := range rows {
		if i > 0 && sameStanding(rows[i-1], rows[i]) {
			rows[i].Rank = rows[i-1].Rank
			continue
		}
		rows[i].Rank = i + 1
	}
	return rows
}

func sameStanding(a, b Row) bool {
	return a.TotalPoints == b.TotalPoints && a.Wins == b.Wins && a.Goals == b.Goals
}
