package service

import (
	"context"
	"fmt"

	"github.com/communication-ltd/portal/internal/config"
	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/store"
	"github.com/communication-ltd/portal/internal/utils"
	"github.com/communication-ltd/portal/models"
)

// historyService is the concrete implementation of HistoryService.
//
// Reuse detection works by recomputation: each archived entry keeps its
// own salt, so the candidate can be re-hashed under that salt and
// compared against the stored digest.
type historyService struct {
	userRepository    store.UserRepository
	historyRepository store.HistoryRepository

	// historyDepth is how many retired credentials are checked, newest
	// first, in addition to the current one.
	historyDepth int

	logger *logger.Logger
}

// NewHistoryService constructs a HistoryService wired to the given
// repositories with the history depth from cfg.
func NewHistoryService(userRepository store.UserRepository, historyRepository store.HistoryRepository, cfg config.Auth, logger *logger.Logger) HistoryService {
	return &historyService{
		userRepository:    userRepository,
		historyRepository: historyRepository,
		historyDepth:      cfg.HistoryDepth,
		logger:            logger,
	}
}

// Check reports whether candidate may become the user's new password.
//
// The candidate is first verified against the user's current credential,
// then against the historyDepth most recent archived entries, newest
// first, returning on the first match. Rejections are ordinary
// PolicyResult values; only infrastructure faults are errors.
func (h *historyService) Check(ctx context.Context, userID int64, candidate string) (models.PolicyResult, error) {
	log := logger.FromContext(ctx)

	user, err := h.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup for history check failed")
		return models.PolicyResult{}, fmt.Errorf("user lookup for history check failed: %w", err)
	}

	if utils.VerifyPassword(candidate, user.PasswordHash, user.Salt) {
		return models.PolicyResult{
			Valid:   false,
			Message: "New password cannot be the same as your current password",
		}, nil
	}

	entries, err := h.historyRepository.RecentEntries(ctx, userID, h.historyDepth)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password history lookup failed")
		return models.PolicyResult{}, fmt.Errorf("password history lookup failed: %w", err)
	}

	for _, entry := range entries {
		if utils.VerifyPassword(candidate, entry.PasswordHash, entry.Salt) {
			return models.PolicyResult{
				Valid:   false,
				Message: "Password has been used recently. Please choose a different password.",
			}, nil
		}
	}

	return models.PolicyResult{Valid: true, Message: "Password is allowed"}, nil
}

// Archive appends a retired credential pair to the user's history.
func (h *historyService) Archive(ctx context.Context, userID int64, passwordHash string, salt string) error {
	entry := models.PasswordHistoryEntry{
		UserID:       userID,
		PasswordHash: passwordHash,
		Salt:         salt,
	}

	if err := h.historyRepository.AppendEntry(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("password history append failed")
		return fmt.Errorf("password history append failed: %w", err)
	}

	return nil
}
