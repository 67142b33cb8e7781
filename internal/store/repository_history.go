package store

import (
	"context"
	"fmt"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/models"
)

// historyRepository is the PostgreSQL-backed implementation of
// [HistoryRepository]. Entries are append-only; reads are bounded by the
// configured history depth and ordered newest-first.
type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the
// provided database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// AppendEntry archives a superseded credential pair.
func (r *historyRepository) AppendEntry(ctx context.Context, entry models.PasswordHistoryEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAppendHistoryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.AppendEntry").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*historyRepository.AppendEntry").Bool("retryable", r.db.retryable(err)).Msg("error executing insert")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// RecentEntries returns up to limit archived entries for the user, newest
// first. An empty result is not an error — a fresh account simply has no
// history yet.
func (r *historyRepository) RecentEntries(ctx context.Context, userID int64, limit int) ([]models.PasswordHistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentHistoryQuery(userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.RecentEntries").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.RecentEntries").Bool("retryable", r.db.retryable(err)).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.PasswordHistoryEntry
	for rows.Next() {
		var entry models.PasswordHistoryEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.PasswordHash, &entry.Salt, &entry.CreatedAt); err != nil {
			log.Err(err).Str("func", "*historyRepository.RecentEntries").Msg("error: scanning error")
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*historyRepository.RecentEntries").Msg("error iterating rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entries, nil
}
