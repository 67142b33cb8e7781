package http

import (
	"context"
	"time"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/service"
	"github.com/communication-ltd/portal/models"
)

// Function-field mocks of the service interfaces. A nil field means the
// test does not expect that call; invoking it panics and fails the test
// loudly.

type mockAuthService struct {
	registerFunc             func(ctx context.Context, username, email, password string) (models.PolicyResult, error)
	loginFunc                func(ctx context.Context, username, password string) (models.User, error)
	changePasswordFunc       func(ctx context.Context, user models.User, currentPassword, newPassword string) (models.PolicyResult, error)
	requestPasswordResetFunc func(ctx context.Context, email string) error
	verifyResetTokenFunc     func(ctx context.Context, email, token string) (models.PolicyResult, error)
	resetPasswordFunc        func(ctx context.Context, email, token, newPassword string) (models.PolicyResult, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, email, password string) (models.PolicyResult, error) {
	return m.registerFunc(ctx, username, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFunc(ctx, username, password)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, user models.User, currentPassword, newPassword string) (models.PolicyResult, error) {
	return m.changePasswordFunc(ctx, user, currentPassword, newPassword)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.requestPasswordResetFunc(ctx, email)
}

func (m *mockAuthService) VerifyResetToken(ctx context.Context, email, token string) (models.PolicyResult, error) {
	return m.verifyResetTokenFunc(ctx, email, token)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, email, token, newPassword string) (models.PolicyResult, error) {
	return m.resetPasswordFunc(ctx, email, token, newPassword)
}

type mockThrottleService struct {
	checkFunc         func(ctx context.Context, username string) (models.ThrottleResult, error)
	recordFailureFunc func(ctx context.Context, username string) error
	resetFunc         func(ctx context.Context, username string) error
}

func (m *mockThrottleService) Check(ctx context.Context, username string) (models.ThrottleResult, error) {
	return m.checkFunc(ctx, username)
}

func (m *mockThrottleService) RecordFailure(ctx context.Context, username string) error {
	return m.recordFailureFunc(ctx, username)
}

func (m *mockThrottleService) Reset(ctx context.Context, username string) error {
	return m.resetFunc(ctx, username)
}

type mockSessionService struct {
	createFunc  func(ctx context.Context, userID int64) (string, error)
	resolveFunc func(ctx context.Context, token string) (models.User, error)
	revokeFunc  func(ctx context.Context, token string) error
}

func (m *mockSessionService) Create(ctx context.Context, userID int64) (string, error) {
	return m.createFunc(ctx, userID)
}

func (m *mockSessionService) Resolve(ctx context.Context, token string) (models.User, error) {
	return m.resolveFunc(ctx, token)
}

func (m *mockSessionService) Revoke(ctx context.Context, token string) error {
	return m.revokeFunc(ctx, token)
}

type mockCustomerService struct {
	createFunc     func(ctx context.Context, customer models.Customer) (models.Customer, models.PolicyResult, error)
	listRecentFunc func(ctx context.Context) ([]models.Customer, error)
}

func (m *mockCustomerService) Create(ctx context.Context, customer models.Customer) (models.Customer, models.PolicyResult, error) {
	return m.createFunc(ctx, customer)
}

func (m *mockCustomerService) ListRecent(ctx context.Context) ([]models.Customer, error) {
	return m.listRecentFunc(ctx)
}

// newAPITestHandler builds a Handler around the given mocked services.
func newAPITestHandler(services *service.Services) *Handler {
	return &Handler{
		services:   services,
		sessionTTL: 24 * time.Hour,
		logger:     logger.Nop(),
	}
}
