package league

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Wozus/Fc-tournament/internal/apperr"
	"github.com/Wozus/Fc-tournament/internal/models"
)

// Payload bounds. Match numbers must fit the INTEGER column.
const (
	maxSpecialPlayers = 2
	maxMatchNo        = math.MaxInt32
	maxCount          = 999
)

// Number is a lenient JSON number. It accepts numbers and numeric strings,
// including a decimal comma; anything unparseable decodes to NaN.
type Number float64

// UnmarshalJSON decodes null, a JSON number or a numeric string. It never
// fails on unparseable text; the value becomes NaN instead.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.ReplaceAll(strings.TrimSpace(str), ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		v = math.NaN()
	}
	*n = Number(v)
	return nil
}

func (n *Number) finite() (float64, bool) {
	if n == nil {
		return 0, false
	}
	v := float64(*n)
	return v, !math.IsNaN(v) && !math.IsInf(v, 0)
}

// StatsInput is one player's line in a match payload.
type StatsInput struct {
	Goals      *Number `json:"goals"`
	Crossbars  *Number `json:"crossbars"`
	BlackPosts *Number `json:"blackPosts"`
	Club       string  `json:"club"`
	Host       bool    `json:"host"`
	Points     *Number `json:"points"`
}

// MatchInput is the create and update payload of a match.
type MatchInput struct {
	No               *Number               `json:"no"`
	Winner           string                `json:"winner"`
	SpecialText      string                `json:"specialText"`
	SpecialPlayers   []string              `json:"specialPlayers"`
	PointsMultiplier *Number               `json:"pointsMultiplier"`
	Players          map[string]StatsInput `json:"players"`
}

// normalizeMatch validates in against the tournament roster and returns the
// match to persist. No is 0 when the caller left numbering to the server.
func normalizeMatch(variant models.Scoring, roster []string, in MatchInput) (models.Match, error) {
	allowed := make(map[string]struct{}, len(roster))
	for _, p := range roster {
		allowed[p] = struct{}{}
	}

	players := make(map[string]models.PlayerStats, len(in.Players))
	for raw, st := range in.Players {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, dup := players[name]; dup {
			return models.Match{}, apperr.Validationf("duplicate player %q", name)
		}
		stats, err := normalizeStats(variant, name, st)
		if err != nil {
			return models.Match{}, err
		}
		players[name] = stats
	}
	if len(players) == 0 {
		return models.Match{}, apperr.Validationf("add at least one player")
	}

	names := make([]string, 0, len(players))
	hosts := 0
	for name, st := range players {
		names = append(names, name)
		if st.Host {
			hosts++
		}
	}
	if variant != models.ScoringPrecomputed && hosts != 1 {
		return models.Match{}, apperr.Validationf("pick exactly one host")
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := allowed[name]; !ok {
			return models.Match{}, apperr.Validationf("unknown player: %s", name)
		}
	}

	m := models.Match{
		SpecialPlayers:   []string{},
		PointsMultiplier: 1,
		Players:          players,
	}

	if w := strings.TrimSpace(in.Winner); w != "" {
		if _, ok := allowed[w]; !ok {
			return models.Match{}, apperr.Validationf("winner %s is not in the roster", w)
		}
		m.Winner = &w
	}
	if txt := strings.TrimSpace(in.SpecialText); txt != "" {
		m.SpecialText = &txt
	}

	// Names outside the roster are dropped before the limit applies.
	seen := make(map[string]struct{})
	for _, p := range in.SpecialPlayers {
		p = strings.TrimSpace(p)
		if _, ok := allowed[p]; !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		m.SpecialPlayers = append(m.SpecialPlayers, p)
	}
	if len(m.SpecialPlayers) > maxSpecialPlayers {
		return models.Match{}, apperr.Validationf("pick at most %d special players", maxSpecialPlayers)
	}

	if v, ok := in.PointsMultiplier.finite(); ok && v > 0 {
		m.PointsMultiplier = v
	}
	if v, ok := in.No.finite(); ok && v >= 1 {
		if v > maxMatchNo {
			return models.Match{}, apperr.Validationf("match number must be at most %d", maxMatchNo)
		}
		m.No = int(v)
	}
	return m, nil
}

func normalizeStats(variant models.Scoring, name string, in StatsInput) (models.PlayerStats, error) {
	var (
		st  models.PlayerStats
		err error
	)
	if st.Goals, err = count(name, "goals", in.Goals); err != nil {
		return st, err
	}
	if st.Crossbars, err = count(name, "crossbars", in.Crossbars); err != nil {
		return st, err
	}
	if st.BlackPosts, err = count(name, "blackPosts", in.BlackPosts); err != nil {
		return st, err
	}

	if variant == models.ScoringPrecomputed {
		pts, _ := in.Points.finite()
		st.Points = &pts
		return st, nil
	}
	st.Club = strings.TrimSpace(in.Club)
	st.Host = in.Host
	return st, nil
}

// count reads a counter in [0, maxCount]. Missing or unparseable values are 0.
func count(player, field string, n *Number) (int, error) {
	v, ok := n.finite()
	if !ok {
		return 0, nil
	}
	if v < 0 {
		return 0, apperr.Validationf("%s: %s cannot be negative", player, field)
	}
	if v > maxCount {
		return 0, apperr.Validationf("%s: %s must be at most %d", player, field, maxCount)
	}
	return int(v), nil
}
