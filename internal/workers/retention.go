package workers

import (
	"context"
	"time"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/store"
)

// retentionWorker periodically purges expired sessions and password-reset
// tokens. Both tables enforce expiry at read time, so the worker only
// reclaims dead rows; correctness never depends on it running.
type retentionWorker struct {
	sessions store.SessionRepository
	resets   store.ResetRepository
	interval time.Duration
	logger   *logger.Logger
}

func newRetentionWorker(sessions store.SessionRepository, resets store.ResetRepository, interval time.Duration, logger *logger.Logger) *retentionWorker {
	return &retentionWorker{
		sessions: sessions,
		resets:   resets,
		interval: interval,
		logger:   logger,
	}
}

// Run purges once immediately, then on every tick until ctx is cancelled.
func (w *retentionWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("retention worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.purge(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("retention worker stopped")
			return
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *retentionWorker) purge(ctx context.Context) {
	sessions, err := w.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		w.logger.Err(err).Msg("purging expired sessions failed")
	}

	resets, err := w.resets.DeleteExpiredResets(ctx)
	if err != nil {
		w.logger.Err(err).Msg("purging expired reset tokens failed")
	}

	if sessions > 0 || resets > 0 {
		w.logger.Info().
			Int64("sessions", sessions).
			Int64("resets", resets).
			Msg("expired rows purged")
	}
}
