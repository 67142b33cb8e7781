package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/communication-ltd/portal/internal/config"
	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/mail"
	"github.com/communication-ltd/portal/internal/store"
	"github.com/communication-ltd/portal/internal/utils"
	"github.com/communication-ltd/portal/models"
)

// resetService is the concrete implementation of ResetService.
//
// The password_resets table keys on user_id, so issuing a new token
// overwrites the previous one: at most one reset is outstanding per user.
// Verification never consumes the token; consumption is an explicit
// separate step after the password has actually been replaced.
type resetService struct {
	userRepository  store.UserRepository
	resetRepository store.ResetRepository

	sender mail.Sender

	// baseURL is the public portal URL embedded in reset links.
	baseURL string

	// resetTokenTTL controls how long an issued token remains valid.
	resetTokenTTL time.Duration

	logger *logger.Logger
}

// NewResetService constructs a ResetService wired to the given
// repositories and mail sender, with link and lifetime settings from cfg.
func NewResetService(userRepository store.UserRepository, resetRepository store.ResetRepository, sender mail.Sender, cfg config.StructuredConfig, logger *logger.Logger) ResetService {
	return &resetService{
		userRepository:  userRepository,
		resetRepository: resetRepository,
		sender:          sender,
		baseURL:         cfg.App.BaseURL,
		resetTokenTTL:   cfg.Auth.ResetTokenTTL,
		logger:          logger,
	}
}

// Request issues a reset token for the account behind email and mails it
// out.
//
// If no account matches, Request succeeds silently so the endpoint cannot
// be used to probe which addresses are registered. Token storage and mail
// delivery failures are infrastructure faults and propagate.
func (r *resetService) Request(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := r.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// do not reveal whether the address is registered
			log.Info().Msg("password reset requested for unknown email")
			return nil
		}

		log.Err(err).Msg("user lookup for password reset failed")
		return fmt.Errorf("user lookup for password reset failed: %w", err)
	}

	token, err := utils.GenerateResetToken(user.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("reset token generation failed")
		return fmt.Errorf("reset token generation failed: %w", err)
	}

	reset := models.PasswordReset{
		UserID:    user.UserID,
		Token:     token,
		ExpiresAt: time.Now().Add(r.resetTokenTTL),
	}

	if err := r.resetRepository.UpsertReset(ctx, reset); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("reset token storage failed")
		return fmt.Errorf("reset token storage failed: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?email=%s&token=%s", r.baseURL, url.QueryEscape(email), url.QueryEscape(token))

	if err := r.sender.SendPasswordReset(email, token, resetURL); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("reset mail delivery failed")
		return fmt.Errorf("reset mail delivery failed: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("password reset token issued")
	return nil
}

// Verify reports whether token is the user's live reset token. The check
// does not consume the token, so it can be repeated.
func (r *resetService) Verify(ctx context.Context, userID int64, token string) (bool, error) {
	_, err := r.resetRepository.FindActiveReset(ctx, userID, token)
	if err != nil {
		if errors.Is(err, store.ErrResetNotFound) {
			return false, nil
		}

		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("reset token lookup failed")
		return false, fmt.Errorf("reset token lookup failed: %w", err)
	}

	return true, nil
}

// Consume deletes the user's reset token after a successful password
// reset.
func (r *resetService) Consume(ctx context.Context, userID int64) error {
	if err := r.resetRepository.DeleteReset(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("reset token consumption failed")
		return fmt.Errorf("reset token consumption failed: %w", err)
	}

	return nil
}
