package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/models"
)

// resetRepository is the PostgreSQL-backed implementation of
// [ResetRepository]. The password_resets table keys on user_id, so a new
// request for the same user overwrites the previous token rather than
// accumulating rows.
type resetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetRepository constructs a [ResetRepository] backed by the provided
// database connection and logger.
func NewResetRepository(db *DB, logger *logger.Logger) ResetRepository {
	logger.Debug().Msg("creating reset repository")
	return &resetRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertReset creates or overwrites the user's reset row. The upsert is a
// single statement, so the one-outstanding-reset-per-user invariant holds
// even under concurrent requests.
func (r *resetRepository) UpsertReset(ctx context.Context, reset models.PasswordReset) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertResetQuery(reset)
	if err != nil {
		log.Err(err).Str("func", "*resetRepository.UpsertReset").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*resetRepository.UpsertReset").Bool("retryable", r.db.retryable(err)).Msg("error executing upsert")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindActiveReset retrieves the live reset row matching both the user and
// the token. The query's expiry predicate makes expired tokens behave as
// absent; verification does not consume the row.
//
// Error handling:
//   - No matching live row → [ErrResetNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *resetRepository) FindActiveReset(ctx context.Context, userID int64, token string) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindActiveResetQuery(userID, token)
	if err != nil {
		log.Err(err).Str("func", "*resetRepository.FindActiveReset").Msg("error building query")
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var reset models.PasswordReset
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*resetRepository.FindActiveReset").Bool("retryable", r.db.retryable(err)).Msg("error: row is nil")
		return models.PasswordReset{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&reset.UserID, &reset.Token, &reset.ExpiresAt, &reset.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PasswordReset{}, ErrResetNotFound
		}

		log.Err(err).Str("func", "*resetRepository.FindActiveReset").Msg("error: scanning error")
		return models.PasswordReset{}, err
	}

	return reset, nil
}

// DeleteReset consumes the user's reset row. Deleting an absent row is not
// an error.
func (r *resetRepository) DeleteReset(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteResetQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*resetRepository.DeleteReset").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*resetRepository.DeleteReset").Bool("retryable", r.db.retryable(err)).Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteExpiredResets reclaims rows whose expiry has passed and returns
// how many were removed. Used only by the retention worker.
func (r *resetRepository) DeleteExpiredResets(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredResetsQuery()
	if err != nil {
		log.Err(err).Str("func", "*resetRepository.DeleteExpiredResets").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resetRepository.DeleteExpiredResets").Bool("retryable", r.db.retryable(err)).Msg("error executing delete")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*resetRepository.DeleteExpiredResets").Msg("error reading affected rows")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
