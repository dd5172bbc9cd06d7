// Package maintenance runs periodic cleanup jobs on a gocron scheduler
// inside the API process.
package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// SessionGrace is how long an expired session row is kept before purging.
const SessionGrace = 7 * 24 * time.Hour

// Config controls job intervals. Zero duration disables a job.
type Config struct {
	LogoCleanupInterval  time.Duration // club_logos rows past their TTL
	SessionPurgeInterval time.Duration // long-expired sessions
	LogoTTL              time.Duration
}

// Purger deletes stale rows. *store.Store satisfies it.
type Purger interface {
	PurgeClubLogos(ctx context.Context, cutoff time.Time) (int64, error)
	PurgeSessions(ctx context.Context, cutoff time.Time) (int64, error)
}

// Start schedules all enabled jobs and blocks until ctx is cancelled.
// Intended to be called with `go`.
func Start(ctx context.Context, p Purger, cfg Config, logger *slog.Logger) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	jobs := []struct {
		name     string
		interval time.Duration
		fn       func(context.Context, Purger, time.Time, *slog.Logger)
	}{
		{"logo-cleanup", cfg.LogoCleanupInterval, func(ctx context.Context, p Purger, now time.Time, l *slog.Logger) {
			PurgeLogos(ctx, p, now.Add(-cfg.LogoTTL), l)
		}},
		{"session-purge", cfg.SessionPurgeInterval, func(ctx context.Context, p Purger, now time.Time, l *slog.Logger) {
			PurgeSessions(ctx, p, now.Add(-SessionGrace), l)
		}},
	}
	for _, j := range jobs {
		if j.interval <= 0 {
			continue
		}
		fn := j.fn
		_, err := sched.NewJob(
			gocron.DurationJob(j.interval),
			gocron.NewTask(func() { fn(ctx, p, time.Now(), logger) }),
			gocron.WithName(j.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return fmt.Errorf("schedule %s: %w", j.name, err)
		}
	}

	sched.Start()
	logger.Info("Maintenance jobs started",
		"logo_cleanup", cfg.LogoCleanupInterval,
		"session_purge", cfg.SessionPurgeInterval)

	<-ctx.Done()
	if err := sched.Shutdown(); err != nil {
		logger.Warn("Maintenance scheduler shutdown failed", "error", err)
	}
	logger.Info("Maintenance jobs stopped")
	return nil
}

// PurgeLogos removes cached logos last refreshed before cutoff.
func PurgeLogos(ctx context.Context, p Purger, cutoff time.Time, logger *slog.Logger) {
	n, err := p.PurgeClubLogos(ctx, cutoff)
	if err != nil {
		logger.Warn("Cleanup: failed to purge club logos", "error", err)
	} else if n > 0 {
		logger.Info("Cleanup: purged stale club logos", "count", n)
	}
}

// PurgeSessions removes sessions that expired before cutoff.
func PurgeSessions(ctx context.Context, p Purger, cutoff time.Time, logger *slog.Logger) {
	n, err := p.PurgeSessions(ctx, cutoff)
	if err != nil {
		logger.Warn("Cleanup: failed to purge sessions", "error", err)
	} else if n > 0 {
		logger.Info("Cleanup: purged expired sessions", "count", n)
	}
}
