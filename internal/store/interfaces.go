package store

import (
	"context"

	"github.com/communication-ltd/portal/models"
)

// UserRepository persists and retrieves portal accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string, salt string) error
}

// SessionRepository persists opaque session tokens and resolves them to
// their owning users.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	// FindActiveSession resolves a token to its owning user. Expiry is
	// enforced in the query itself; expired rows behave as absent.
	FindActiveSession(ctx context.Context, token string) (models.User, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// ResetRepository persists password-reset tokens, one row per user.
type ResetRepository interface {
	// UpsertReset creates the user's reset row or overwrites an existing one.
	UpsertReset(ctx context.Context, reset models.PasswordReset) error
	FindActiveReset(ctx context.Context, userID int64, token string) (models.PasswordReset, error)
	DeleteReset(ctx context.Context, userID int64) error
	DeleteExpiredResets(ctx context.Context) (int64, error)
}

// HistoryRepository archives superseded credential pairs.
type HistoryRepository interface {
	AppendEntry(ctx context.Context, entry models.PasswordHistoryEntry) error
	// RecentEntries returns up to limit entries, newest first.
	RecentEntries(ctx context.Context, userID int64, limit int) ([]models.PasswordHistoryEntry, error)
}

// AttemptRepository tracks consecutive failed logins per username.
type AttemptRepository interface {
	FindAttempt(ctx context.Context, username string) (models.LoginAttempt, error)
	// RecordFailure creates the row with attempts=1 or atomically
	// increments it, refreshing the last-attempt timestamp.
	RecordFailure(ctx context.Context, username string) error
	// ResetWindow restarts the counter at 1 after the lockout window has
	// elapsed, refreshing the last-attempt timestamp.
	ResetWindow(ctx context.Context, username string) error
	DeleteAttempt(ctx context.Context, username string) error
}

// CustomerRepository persists customer-book records.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	// ListRecentCustomers returns up to limit customers, newest first.
	ListRecentCustomers(ctx context.Context, limit int) ([]models.Customer, error)
}
