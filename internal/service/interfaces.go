package service

import (
	"context"

	"github.com/communication-ltd/portal/models"
)

// PasswordPolicyService validates candidate passwords against the
// configured complexity rules and the common-password denylist.
type PasswordPolicyService interface {
	Validate(password string) models.PolicyResult
}

// ThrottleService tracks failed login attempts per username and blocks
// further attempts once the configured threshold is reached.
type ThrottleService interface {
	Check(ctx context.Context, username string) (models.ThrottleResult, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// SessionService manages opaque, database-backed session tokens.
type SessionService interface {
	Create(ctx context.Context, userID int64) (string, error)
	Resolve(ctx context.Context, token string) (models.User, error)
	Revoke(ctx context.Context, token string) error
}

// HistoryService prevents password reuse by checking candidates against
// the user's current credential and the most recently retired ones.
type HistoryService interface {
	Check(ctx context.Context, userID int64, candidate string) (models.PolicyResult, error)
	Archive(ctx context.Context, userID int64, passwordHash string, salt string) error
}

// ResetService manages the password-reset token lifecycle: issuance and
// mail-out, non-consuming verification, and consumption after a
// successful reset.
type ResetService interface {
	Request(ctx context.Context, email string) error
	Verify(ctx context.Context, userID int64, token string) (bool, error)
	Consume(ctx context.Context, userID int64) error
}

// AuthService covers account lifecycle operations: registration,
// credential verification, and the password change/reset orchestrations.
type AuthService interface {
	Register(ctx context.Context, username string, email string, password string) (models.PolicyResult, error)
	Login(ctx context.Context, username string, password string) (models.User, error)
	ChangePassword(ctx context.Context, user models.User, currentPassword string, newPassword string) (models.PolicyResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetToken(ctx context.Context, email string, token string) (models.PolicyResult, error)
	ResetPassword(ctx context.Context, email string, token string, newPassword string) (models.PolicyResult, error)
}

// CustomerService manages customer records.
type CustomerService interface {
	Create(ctx context.Context, customer models.Customer) (models.Customer, models.PolicyResult, error)
	ListRecent(ctx context.Context) ([]models.Customer, error)
}
