// Package clublogo resolves a club name to a logo URL. Lookups go through a
// local table, then the club_logos cache, then TheSportsDB.
package clublogo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/Wozus/Fc-tournament/internal/apperr"
	"github.com/Wozus/Fc-tournament/internal/store"
)

// CacheTTL is how long a cached logo URL is served before a fresh lookup.
const CacheTTL = 30 * 24 * time.Hour

// Sources reported with a resolved logo.
const (
	SourceLocal = "local"
	SourceCache = "cache"
	SourceAPI   = "api"
)

// Names TheSportsDB is queried with instead of what the user typed.
var aliases = map[string]string{
	"real madryt": "Real Madrid",
	"barcelona":   "Barcelona",
	"juventus":    "Juventus",
	"liverpool":   "Liverpool",
}

// Store is the logo cache. *store.Store satisfies it.
type Store interface {
	ClubLogo(ctx context.Context, key string) (string, time.Time, error)
	SaveClubLogo(ctx context.Context, key, name, url, source string) error
}

// Finder looks up a badge URL by club name. *SportsDB satisfies it.
type Finder interface {
	Badge(ctx context.Context, name string) (string, error)
}

// Logo is a resolved logo.
type Logo struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

// Resolver implements the lookup chain.
type Resolver struct {
	local  map[string]string
	store  Store
	finder Finder
	logger *slog.Logger
	now    func() time.Time
}

// NewResolver returns a Resolver. local maps normalized club names to URLs
// and may be nil.
func NewResolver(local map[string]string, s Store, f Finder, logger *slog.Logger) *Resolver {
	normalized := make(map[string]string, len(local))
	for name, u := range local {
		normalized[normalize(name)] = u
	}
	return &Resolver{local: normalized, store: s, finder: f, logger: logger, now: time.Now}
}

// LoadLocal reads a JSON object of club name to logo URL. An empty path
// yields an empty table.
func LoadLocal(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read club logos: %w", err)
	}
	var local map[string]string
	if err := json.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("decode club logos %s: %w", path, err)
	}
	return local, nil
}

// Resolve returns the logo for name, or a NotFound error.
func (r *Resolver) Resolve(ctx context.Context, name string) (Logo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Logo{}, apperr.Validationf("club name is required")
	}
	norm := normalize(name)
	if u, ok := r.local[norm]; ok {
		return Logo{URL: u, Source: SourceLocal}, nil
	}

	key := CacheKey(name)
	cached, updatedAt, err := r.store.ClubLogo(ctx, key)
	switch {
	case err == nil && r.now().Sub(updatedAt) < CacheTTL:
		return Logo{URL: cached, Source: SourceCache}, nil
	case err != nil && !errors.Is(err, store.ErrNotFound):
		r.logger.Warn("Club logo cache read failed", "club", name, "error", err)
	}

	query := name
	if alias, ok := aliases[norm]; ok {
		query = alias
	}
	badge, err := r.finder.Badge(ctx, query)
	if err != nil {
		r.logger.Warn("Club logo lookup failed", "club", name, "error", err)
		return Logo{}, errNoLogo
	}
	if badge == "" {
		return Logo{}, errNoLogo
	}

	if err := r.store.SaveClubLogo(ctx, key, norm, badge, "thesportsdb"); err != nil {
		return Logo{}, err
	}
	return Logo{URL: badge, Source: SourceAPI}, nil
}

var errNoLogo = apperr.NotFoundf("no logo found")

// CacheKey is the club_logos key for a club name.
func CacheKey(name string) string {
	if k := slug.Make(normalize(name)); k != "" {
		return k
	}
	return normalize(name)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
