package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. Session rows carry their own expiry; the lookup
// query filters on it, so an expired session and an unknown token are
// indistinguishable to callers.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a freshly issued session row.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateSessionQuery(session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Bool("retryable", r.db.retryable(err)).Msg("error executing insert")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindActiveSession resolves a token to its owning user by joining the
// sessions and users tables. The query's `expires_at > now()` predicate
// makes expired rows behave as absent.
//
// Error handling:
//   - No matching live row → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) FindActiveSession(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindActiveSessionQuery(token)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindActiveSession").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindActiveSession").Bool("retryable", r.db.retryable(err)).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.Salt, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindActiveSession").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// DeleteSession removes the session row for the given token. Deleting an
// unknown token is not an error, which makes revocation idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(token)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Bool("retryable", r.db.retryable(err)).Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteExpiredSessions reclaims rows whose expiry has passed and returns
// how many were removed. Used only by the retention worker; the read path
// never depends on it.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Bool("retryable", r.db.retryable(err)).Msg("error executing delete")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error reading affected rows")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
