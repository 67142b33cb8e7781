package service

import (
	"context"
	"fmt"
	"time"

	"github.com/communication-ltd/portal/internal/config"
	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/store"
	"github.com/communication-ltd/portal/internal/utils"
	"github.com/communication-ltd/portal/models"
)

// sessionService is the concrete implementation of SessionService.
//
// Tokens are opaque high-entropy strings stored as session row primary
// keys; resolving one is a single joined query that also filters out
// expired rows, so there is nothing to verify client-side.
type sessionService struct {
	sessionRepository store.SessionRepository

	// sessionTTL controls how long a newly issued session remains valid.
	sessionTTL time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// SessionRepository with the session lifetime from cfg.
func NewSessionService(sessionRepository store.SessionRepository, cfg config.Auth, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		sessionTTL:        cfg.SessionTTL,
		logger:            logger,
	}
}

// Create issues a new session for the given user and returns its token.
func (s *sessionService) Create(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateSessionToken()
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("session token generation failed")
		return "", fmt.Errorf("session token generation failed: %w", err)
	}

	session := models.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("session creation failed")
		return "", fmt.Errorf("session creation failed: %w", err)
	}

	return token, nil
}

// Resolve returns the user owning the given live session token.
//
// An unknown token and an expired one are indistinguishable: both come
// back as store.ErrSessionNotFound.
func (s *sessionService) Resolve(ctx context.Context, token string) (models.User, error) {
	user, err := s.sessionRepository.FindActiveSession(ctx, token)
	if err != nil {
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	return user, nil
}

// Revoke deletes the session row for the given token. Revoking an
// unknown or already-revoked token succeeds silently.
func (s *sessionService) Revoke(ctx context.Context, token string) error {
	if err := s.sessionRepository.DeleteSession(ctx, token); err != nil {
		logger.FromContext(ctx).Err(err).Msg("session revocation failed")
		return fmt.Errorf("session revocation failed: %w", err)
	}

	return nil
}
