package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/store"
	"github.com/communication-ltd/portal/internal/utils"
	"github.com/communication-ltd/portal/models"
)

// authService is the concrete implementation of AuthService.
//
// It owns the account lifecycle: registration with policy enforcement,
// credential verification for login, and the two password-replacement
// orchestrations (authenticated change and token-based reset). Policy
// and history rejections surface as PolicyResult values; wrong
// credentials surface as ErrWrongPassword so the handler can collapse
// them with unknown-user lookups into one uniform 401.
type authService struct {
	userRepository store.UserRepository

	policy  PasswordPolicyService
	history HistoryService
	reset   ResetService

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// UserRepository and collaborating services.
//
// The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(userRepository store.UserRepository, policy PasswordPolicyService, history HistoryService, reset ResetService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		policy:         policy,
		history:        history,
		reset:          reset,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The password must satisfy the full policy, and both username and email
// must be unused. The uniqueness pre-checks are advisory; the database
// unique constraints are authoritative, so a race between two concurrent
// registrations still yields exactly one account.
//
// Returns a PolicyResult describing the rejection, or Valid=true once
// the account exists. Only infrastructure faults are errors.
func (a *authService) Register(ctx context.Context, username string, email string, password string) (models.PolicyResult, error) {
	log := logger.FromContext(ctx)

	if username == "" || email == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.PolicyResult{}, ErrInvalidDataProvided
	}

	if result := a.policy.Validate(password); !result.Valid {
		return result, nil
	}

	taken, err := a.identityTaken(ctx, username, email)
	if err != nil {
		log.Err(err).Str("username", username).Msg("registration uniqueness check failed")
		return models.PolicyResult{}, fmt.Errorf("registration uniqueness check failed: %w", err)
	}
	if taken {
		return models.PolicyResult{Valid: false, Message: "Username or email already exists"}, nil
	}

	digest, salt, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.PolicyResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: digest,
		Salt:         salt,
	}

	if _, err := a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			// lost the race against a concurrent registration
			return models.PolicyResult{Valid: false, Message: "Username or email already exists"}, nil
		}

		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.PolicyResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("username", username).Msg("user registered")
	return models.PolicyResult{Valid: true, Message: "User registered successfully"}, nil
}

// identityTaken reports whether username or email already belongs to an
// account.
func (a *authService) identityTaken(ctx context.Context, username string, email string) (bool, error) {
	if _, err := a.userRepository.FindUserByUsername(ctx, username); err == nil {
		return true, nil
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return false, err
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, email); err == nil {
		return true, nil
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return false, err
	}

	return false, nil
}

// Login verifies the given credentials and returns the account.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped store.ErrUserNotFound if no such account exists.
//   - ErrWrongPassword if the password does not verify.
//
// The handler maps the last two onto the same uniform 401 so responses
// do not reveal which usernames exist.
func (a *authService) Login(ctx context.Context, username string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(password, user.PasswordHash, user.Salt) {
		log.Warn().Int64("user_id", user.UserID).Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// ChangePassword replaces the password of an authenticated user.
//
// The current password must verify, and the new one must pass both the
// policy and the reuse check. On success the retired credential pair is
// archived to the history.
func (a *authService) ChangePassword(ctx context.Context, user models.User, currentPassword string, newPassword string) (models.PolicyResult, error) {
	log := logger.FromContext(ctx)

	if !utils.VerifyPassword(currentPassword, user.PasswordHash, user.Salt) {
		return models.PolicyResult{Valid: false, Message: "Current password is incorrect"}, nil
	}

	if result := a.policy.Validate(newPassword); !result.Valid {
		return result, nil
	}

	result, err := a.history.Check(ctx, user.UserID, newPassword)
	if err != nil {
		return models.PolicyResult{}, err
	}
	if !result.Valid {
		return result, nil
	}

	digest, salt, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("password hashing failed")
		return models.PolicyResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, user.UserID, digest, salt); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("password update failed")
		return models.PolicyResult{}, fmt.Errorf("password update failed: %w", err)
	}

	if err := a.history.Archive(ctx, user.UserID, user.PasswordHash, user.Salt); err != nil {
		return models.PolicyResult{}, err
	}

	log.Info().Int64("user_id", user.UserID).Msg("password changed")
	return models.PolicyResult{Valid: true, Message: "Password changed successfully"}, nil
}

// RequestPasswordReset issues and mails a reset token for the account
// behind email, succeeding silently when no such account exists.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	return a.reset.Request(ctx, email)
}

// VerifyResetToken checks a reset token without consuming it.
//
// An unknown email and an invalid or expired token both come back as
// ordinary rejections, not errors.
func (a *authService) VerifyResetToken(ctx context.Context, email string, token string) (models.PolicyResult, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.PolicyResult{Valid: false, Message: "Invalid token"}, nil
		}

		log.Err(err).Msg("user lookup for token verification failed")
		return models.PolicyResult{}, fmt.Errorf("user lookup for token verification failed: %w", err)
	}

	ok, err := a.reset.Verify(ctx, user.UserID, token)
	if err != nil {
		return models.PolicyResult{}, err
	}
	if !ok {
		return models.PolicyResult{Valid: false, Message: "Invalid or expired token"}, nil
	}

	return models.PolicyResult{Valid: true, Message: "Token verified"}, nil
}

// ResetPassword replaces a forgotten password using a mailed reset token.
//
// The new password must pass the policy; the token must be the user's
// live one. The reuse check and the history append are best-effort here:
// an infrastructure fault in either is logged and swallowed so the reset
// itself still completes. A positive reuse match still rejects.
func (a *authService) ResetPassword(ctx context.Context, email string, token string, newPassword string) (models.PolicyResult, error) {
	log := logger.FromContext(ctx)

	if result := a.policy.Validate(newPassword); !result.Valid {
		return result, nil
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.PolicyResult{Valid: false, Message: "Invalid token"}, nil
		}

		log.Err(err).Msg("user lookup for password reset failed")
		return models.PolicyResult{}, fmt.Errorf("user lookup for password reset failed: %w", err)
	}

	ok, err := a.reset.Verify(ctx, user.UserID, token)
	if err != nil {
		return models.PolicyResult{}, err
	}
	if !ok {
		return models.PolicyResult{Valid: false, Message: "Invalid or expired token"}, nil
	}

	// best-effort: a fault here must not block the reset
	if result, err := a.history.Check(ctx, user.UserID, newPassword); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("password history check failed, continuing with reset")
	} else if !result.Valid {
		return result, nil
	}

	digest, salt, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("password hashing failed")
		return models.PolicyResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, user.UserID, digest, salt); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("password update failed")
		return models.PolicyResult{}, fmt.Errorf("password update failed: %w", err)
	}

	// best-effort: the password is already replaced at this point
	if err := a.history.Archive(ctx, user.UserID, user.PasswordHash, user.Salt); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("password history append failed, continuing with reset")
	}

	if err := a.reset.Consume(ctx, user.UserID); err != nil {
		return models.PolicyResult{}, err
	}

	log.Info().Int64("user_id", user.UserID).Msg("password reset completed")
	return models.PolicyResult{Valid: true, Message: "Password reset successful"}, nil
}
