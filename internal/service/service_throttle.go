package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/communication-ltd/portal/internal/config"
	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/store"
	"github.com/communication-ltd/portal/models"
)

// throttleService is the concrete implementation of ThrottleService.
//
// State lives entirely in the login_attempts table: one row per username,
// created on first failure and deleted on success. The counter increment
// is a single-statement upsert inside the repository, so concurrent
// failures for the same username cannot under-count.
type throttleService struct {
	attemptRepository store.AttemptRepository

	// maxAttempts is the failure count at which further logins are blocked.
	maxAttempts int

	// lockoutWindow is how long the block lasts, measured from the last
	// recorded failure.
	lockoutWindow time.Duration

	logger *logger.Logger
}

// NewThrottleService constructs a ThrottleService wired to the given
// AttemptRepository and populated with the limits from cfg.
func NewThrottleService(attemptRepository store.AttemptRepository, cfg config.Auth, logger *logger.Logger) ThrottleService {
	return &throttleService{
		attemptRepository: attemptRepository,
		maxAttempts:       cfg.MaxLoginAttempts,
		lockoutWindow:     cfg.LockoutWindow,
		logger:            logger,
	}
}

// Check reports whether a login attempt for username may proceed.
//
// A username with no recorded failures is always allowed. Once the
// failure counter reaches maxAttempts the username is blocked until
// lockoutWindow has elapsed since the last failure; the first Check after
// the window restarts the counter at 1 and allows the attempt.
//
// Returns an error only for infrastructure faults; the block itself is an
// ordinary ThrottleResult value.
func (t *throttleService) Check(ctx context.Context, username string) (models.ThrottleResult, error) {
	log := logger.FromContext(ctx)

	attempt, err := t.attemptRepository.FindAttempt(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrAttemptNotFound) {
			return models.ThrottleResult{Allowed: true, Message: "Login allowed"}, nil
		}

		log.Err(err).Str("username", username).Msg("login attempt lookup failed")
		return models.ThrottleResult{}, fmt.Errorf("login attempt lookup failed: %w", err)
	}

	if attempt.Attempts >= t.maxAttempts {
		if time.Since(attempt.LastAttempt) < t.lockoutWindow {
			log.Warn().
				Str("username", username).
				Int("attempts", attempt.Attempts).
				Time("last_attempt", attempt.LastAttempt).
				Msg("login blocked by throttle")
			return models.ThrottleResult{
				Allowed: false,
				Message: "Too many failed login attempts. Please try again later.",
			}, nil
		}

		// window elapsed: the arriving attempt starts a new series
		if err := t.attemptRepository.ResetWindow(ctx, username); err != nil {
			log.Err(err).Str("username", username).Msg("login attempt window reset failed")
			return models.ThrottleResult{}, fmt.Errorf("login attempt window reset failed: %w", err)
		}
	}

	return models.ThrottleResult{Allowed: true, Message: "Login allowed"}, nil
}

// RecordFailure registers one failed login for username.
func (t *throttleService) RecordFailure(ctx context.Context, username string) error {
	if err := t.attemptRepository.RecordFailure(ctx, username); err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("recording login failure failed")
		return fmt.Errorf("recording login failure failed: %w", err)
	}

	return nil
}

// Reset clears the failure record for username after a successful login.
func (t *throttleService) Reset(ctx context.Context, username string) error {
	if err := t.attemptRepository.DeleteAttempt(ctx, username); err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("resetting login attempts failed")
		return fmt.Errorf("resetting login attempts failed: %w", err)
	}

	return nil
}
