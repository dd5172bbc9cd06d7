package maintenance

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Wozus/Fc-tournament/internal/store/memstore"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestPurgeLogos(t *testing.T) {
	ms := memstore.New()
	now := time.Now()
	_ = ms.PutClubLogo("old", "https://img/old.png", now.Add(-31*24*time.Hour))
	_ = ms.PutClubLogo("fresh", "https://img/fresh.png", now.Add(-time.Hour))

	PurgeLogos(context.Background(), ms, now.Add(-30*24*time.Hour), discard)

	if _, _, err := ms.ClubLogo(context.Background(), "old"); err == nil {
		t.Error("stale logo survived")
	}
	if _, _, err := ms.ClubLogo(context.Background(), "fresh"); err != nil {
		t.Errorf("fresh logo purged: %v", err)
	}
}

func TestPurgeSessions(t *testing.T) {
	ms := memstore.New()
	ctx := context.Background()
	now := time.Now()
	_ = ms.CreateSession(ctx, "u1", "long-gone", now.Add(-8*24*time.Hour))
	_ = ms.CreateSession(ctx, "u1", "just-expired", now.Add(-time.Hour))
	_ = ms.CreateSession(ctx, "u1", "live", now.Add(time.Hour))

	PurgeSessions(ctx, ms, now.Add(-SessionGrace), discard)

	if got := ms.SessionCount(); got != 2 {
		t.Errorf("sessions left = %d, want 2", got)
	}
}

type failingPurger struct{ calls int }

func (f *failingPurger) PurgeClubLogos(context.Context, time.Time) (int64, error) {
	f.calls++
	return 0, errors.New("db down")
}

func (f *failingPurger) PurgeSessions(context.Context, time.Time) (int64, error) {
	f.calls++
	return 0, errors.New("db down")
}

func TestPurgeErrorsAreLogged(t *testing.T) {
	f := &failingPurger{}
	PurgeLogos(context.Background(), f, time.Now(), discard)
	PurgeSessions(context.Background(), f, time.Now(), discard)
	if f.calls != 2 {
		t.Errorf("calls = %d", f.calls)
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Start(ctx, memstore.New(), Config{LogoCleanupInterval: time.Hour, LogoTTL: time.Hour}, discard)
	}()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
