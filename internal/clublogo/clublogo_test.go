package clublogo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Wozus/Fc-tournament/internal/apperr"
	"github.com/Wozus/Fc-tournament/internal/store"
)

type cachedLogo struct {
	url       string
	updatedAt time.Time
}

type memCache struct {
	rows  map[string]cachedLogo
	saves int
}

func (m *memCache) ClubLogo(_ context.Context, key string) (string, time.Time, error) {
	row, ok := m.rows[key]
	if !ok {
		return "", time.Time{}, store.ErrNotFound
	}
	return row.url, row.updatedAt, nil
}

func (m *memCache) SaveClubLogo(_ context.Context, key, _, url, _ string) error {
	m.saves++
	m.rows[key] = cachedLogo{url: url, updatedAt: time.Now()}
	return nil
}

type stubFinder struct {
	badge   string
	err     error
	queries []string
}

func (f *stubFinder) Badge(_ context.Context, name string) (string, error) {
	f.queries = append(f.queries, name)
	return f.badge, f.err
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestResolveChain(t *testing.T) {
	ctx := context.Background()
	cache := &memCache{rows: map[string]cachedLogo{}}
	finder := &stubFinder{badge: "https://img.example/real.png"}
	r := NewResolver(map[string]string{"Legia Warszawa": "/logos/legia.png"}, cache, finder, quietLogger())

	logo, err := r.Resolve(ctx, "  legia warszawa ")
	if err != nil || logo != (Logo{URL: "/logos/legia.png", Source: SourceLocal}) {
		t.Fatalf("local = %+v, %v", logo, err)
	}

	logo, err = r.Resolve(ctx, "Real Madryt")
	if err != nil || logo.Source != SourceAPI || logo.URL != finder.badge {
		t.Fatalf("api = %+v, %v", logo, err)
	}
	if len(finder.queries) != 1 || finder.queries[0] != "Real Madrid" {
		t.Errorf("queries = %v, want alias", finder.queries)
	}
	if _, ok := cache.rows["real-madryt"]; !ok {
		t.Errorf("cache rows = %v", cache.rows)
	}

	logo, err = r.Resolve(ctx, "real madryt")
	if err != nil || logo.Source != SourceCache {
		t.Fatalf("second lookup = %+v, %v", logo, err)
	}
	if len(finder.queries) != 1 {
		t.Error("fresh cache row should skip the API")
	}
}

func TestResolveAliases(t *testing.T) {
	tests := map[string]string{
		" LIVERPOOL ": "Liverpool",
		"juventus":    "Juventus",
		"barcelona":   "Barcelona",
		"Real Madryt": "Real Madrid",
		"Ajax":        "Ajax",
	}
	for in, want := range tests {
		finder := &stubFinder{badge: "https://img.example/badge.png"}
		r := NewResolver(nil, &memCache{rows: map[string]cachedLogo{}}, finder, quietLogger())
		if _, err := r.Resolve(context.Background(), in); err != nil {
			t.Fatalf("Resolve(%q): %v", in, err)
		}
		if len(finder.queries) != 1 || finder.queries[0] != want {
			t.Errorf("Resolve(%q) queried %v, want %q", in, finder.queries, want)
		}
	}
}

func TestResolveStaleCache(t *testing.T) {
	cache := &memCache{rows: map[string]cachedLogo{
		"ajax": {url: "https://old.example/ajax.png", updatedAt: time.Now().Add(-CacheTTL - time.Hour)},
	}}
	finder := &stubFinder{badge: "https://new.example/ajax.png"}
	r := NewResolver(nil, cache, finder, quietLogger())

	logo, err := r.Resolve(context.Background(), "Ajax")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if logo.Source != SourceAPI || logo.URL != finder.badge || cache.saves != 1 {
		t.Errorf("logo = %+v, saves = %d", logo, cache.saves)
	}
}

func TestResolveNotFound(t *testing.T) {
	ctx := context.Background()
	for _, f := range []*stubFinder{{}, {err: errors.New("timeout")}} {
		r := NewResolver(nil, &memCache{rows: map[string]cachedLogo{}}, f, quietLogger())
		if _, err := r.Resolve(ctx, "Nowhere FC"); !apperr.Is(err, apperr.NotFound) {
			t.Errorf("err = %v, want NotFound", err)
		}
	}

	r := NewResolver(nil, &memCache{rows: map[string]cachedLogo{}}, &stubFinder{}, quietLogger())
	if _, err := r.Resolve(ctx, "   "); !apperr.Is(err, apperr.Validation) {
		t.Errorf("empty name err = %v, want Validation", err)
	}
}

func TestCacheKey(t *testing.T) {
	tests := map[string]string{
		"Real Madryt":         "real-madryt",
		"  Śląsk Wrocław ":    "slask-wroclaw",
		"Paris Saint-Germain": "paris-saint-germain",
	}
	for in, want := range tests {
		if got := CacheKey(in); got != want {
			t.Errorf("CacheKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadLocal(t *testing.T) {
	empty, err := LoadLocal("")
	if err != nil || len(empty) != 0 {
		t.Fatalf("LoadLocal(\"\") = %v, %v", empty, err)
	}

	path := filepath.Join(t.TempDir(), "logos.json")
	if err := os.WriteFile(path, []byte(`{"Lech Poznań": "/logos/lech.png"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	local, err := LoadLocal(path)
	if err != nil || local["Lech Poznań"] != "/logos/lech.png" {
		t.Errorf("LoadLocal = %v, %v", local, err)
	}

	if err := os.WriteFile(path, []byte(`[1,2]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLocal(path); err == nil {
		t.Error("expected decode error")
	}
}

func TestSportsDBBadge(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/key1/searchteams.php" {
			http.NotFound(w, r)
			return
		}
		switch r.URL.Query().Get("t") {
		case "Real Madrid":
			w.Write([]byte(`{"teams":[{"strTeam":"Real Madrid","strBadge":"https://b.example/rm.png"}]}`))
		case "boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"teams":null}`))
		}
	}))
	defer srv.Close()

	c := NewSportsDB(srv.URL+"/", "key1", 6000, quietLogger())
	ctx := context.Background()

	badge, err := c.Badge(ctx, "Real Madrid")
	if err != nil || badge != "https://b.example/rm.png" {
		t.Errorf("Badge = %q, %v", badge, err)
	}
	badge, err = c.Badge(ctx, "Unknown")
	if err != nil || badge != "" {
		t.Errorf("miss = %q, %v", badge, err)
	}
	if _, err := c.Badge(ctx, "boom"); err == nil {
		t.Error("expected error on 500")
	}
	if hits.Load() != 3 {
		t.Errorf("hits = %d", hits.Load())
	}
}
