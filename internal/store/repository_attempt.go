package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/models"
)

// attemptRepository is the PostgreSQL-backed implementation of
// [AttemptRepository]. One row per username; the failure counter is
// incremented inside the database so concurrent failures cannot
// under-count.
type attemptRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAttemptRepository constructs an [AttemptRepository] backed by the
// provided database connection and logger.
func NewAttemptRepository(db *DB, logger *logger.Logger) AttemptRepository {
	logger.Debug().Msg("creating attempt repository")
	return &attemptRepository{
		db:     db,
		logger: logger,
	}
}

// FindAttempt retrieves the failed-login record for the given username.
//
// Error handling:
//   - No matching row → [ErrAttemptNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *attemptRepository) FindAttempt(ctx context.Context, username string) (models.LoginAttempt, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAttemptQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.FindAttempt").Msg("error building query")
		return models.LoginAttempt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var attempt models.LoginAttempt
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*attemptRepository.FindAttempt").Bool("retryable", r.db.retryable(err)).Msg("error: row is nil")
		return models.LoginAttempt{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&attempt.Username, &attempt.Attempts, &attempt.LastAttempt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LoginAttempt{}, ErrAttemptNotFound
		}

		log.Err(err).Str("func", "*attemptRepository.FindAttempt").Msg("error: scanning error")
		return models.LoginAttempt{}, err
	}

	return attempt, nil
}

// RecordFailure creates the row with attempts=1 or atomically increments
// the existing counter, refreshing the last-attempt timestamp.
func (r *attemptRepository) RecordFailure(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordFailureQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.RecordFailure").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*attemptRepository.RecordFailure").Bool("retryable", r.db.retryable(err)).Msg("error executing upsert")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ResetWindow restarts the counter at 1 and refreshes the last-attempt
// timestamp. Called when a check arrives after the lockout window has
// elapsed: the arriving attempt is the first of a new series, so the
// counter restarts at 1 rather than 0.
func (r *attemptRepository) ResetWindow(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildResetWindowQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.ResetWindow").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*attemptRepository.ResetWindow").Bool("retryable", r.db.retryable(err)).Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteAttempt clears the record entirely; called on successful login.
// Deleting an absent row is not an error.
func (r *attemptRepository) DeleteAttempt(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAttemptQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.DeleteAttempt").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*attemptRepository.DeleteAttempt").Bool("retryable", r.db.retryable(err)).Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
