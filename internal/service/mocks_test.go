package service

import (
	"context"

	"github.com/communication-ltd/portal/models"
)

// Hand-rolled function-field mocks for the store interfaces. Each method
// field can be overridden per test case; unset fields panic, which makes
// unexpected calls fail loudly.

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, userID int64) (models.User, error)
	updatePasswordFn     func(ctx context.Context, userID int64, passwordHash string, salt string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByIDFn(ctx, userID)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string, salt string) error {
	return m.updatePasswordFn(ctx, userID, passwordHash, salt)
}

type mockSessionRepository struct {
	createSessionFn         func(ctx context.Context, session models.Session) error
	findActiveSessionFn     func(ctx context.Context, token string) (models.User, error)
	deleteSessionFn         func(ctx context.Context, token string) error
	deleteExpiredSessionsFn func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	return m.createSessionFn(ctx, session)
}

func (m *mockSessionRepository) FindActiveSession(ctx context.Context, token string) (models.User, error) {
	return m.findActiveSessionFn(ctx, token)
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context, token string) error {
	return m.deleteSessionFn(ctx, token)
}

func (m *mockSessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	return m.deleteExpiredSessionsFn(ctx)
}

type mockResetRepository struct {
	upsertResetFn         func(ctx context.Context, reset models.PasswordReset) error
	findActiveResetFn     func(ctx context.Context, userID int64, token string) (models.PasswordReset, error)
	deleteResetFn         func(ctx context.Context, userID int64) error
	deleteExpiredResetsFn func(ctx context.Context) (int64, error)
}

func (m *mockResetRepository) UpsertReset(ctx context.Context, reset models.PasswordReset) error {
	return m.upsertResetFn(ctx, reset)
}

func (m *mockResetRepository) FindActiveReset(ctx context.Context, userID int64, token string) (models.PasswordReset, error) {
	return m.findActiveResetFn(ctx, userID, token)
}

func (m *mockResetRepository) DeleteReset(ctx context.Context, userID int64) error {
	return m.deleteResetFn(ctx, userID)
}

func (m *mockResetRepository) DeleteExpiredResets(ctx context.Context) (int64, error) {
	return m.deleteExpiredResetsFn(ctx)
}

type mockHistoryRepository struct {
	appendEntryFn   func(ctx context.Context, entry models.PasswordHistoryEntry) error
	recentEntriesFn func(ctx context.Context, userID int64, limit int) ([]models.PasswordHistoryEntry, error)
}

func (m *mockHistoryRepository) AppendEntry(ctx context.Context, entry models.PasswordHistoryEntry) error {
	return m.appendEntryFn(ctx, entry)
}

func (m *mockHistoryRepository) RecentEntries(ctx context.Context, userID int64, limit int) ([]models.PasswordHistoryEntry, error) {
	return m.recentEntriesFn(ctx, userID, limit)
}

type mockAttemptRepository struct {
	findAttemptFn   func(ctx context.Context, username string) (models.LoginAttempt, error)
	recordFailureFn func(ctx context.Context, username string) error
	resetWindowFn   func(ctx context.Context, username string) error
	deleteAttemptFn func(ctx context.Context, username string) error
}

func (m *mockAttemptRepository) FindAttempt(ctx context.Context, username string) (models.LoginAttempt, error) {
	return m.findAttemptFn(ctx, username)
}

func (m *mockAttemptRepository) RecordFailure(ctx context.Context, username string) error {
	return m.recordFailureFn(ctx, username)
}

func (m *mockAttemptRepository) ResetWindow(ctx context.Context, username string) error {
	return m.resetWindowFn(ctx, username)
}

func (m *mockAttemptRepository) DeleteAttempt(ctx context.Context, username string) error {
	return m.deleteAttemptFn(ctx, username)
}

type mockCustomerRepository struct {
	createCustomerFn      func(ctx context.Context, customer models.Customer) (models.Customer, error)
	listRecentCustomersFn func(ctx context.Context, limit int) ([]models.Customer, error)
}

func (m *mockCustomerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	return m.createCustomerFn(ctx, customer)
}

func (m *mockCustomerRepository) ListRecentCustomers(ctx context.Context, limit int) ([]models.Customer, error) {
	return m.listRecentCustomersFn(ctx, limit)
}

// mockSender records outbound mail instead of dialing SMTP.
type mockSender struct {
	sendFn func(to string, token string, resetURL string) error
}

func (m *mockSender) SendPasswordReset(to string, token string, resetURL string) error {
	return m.sendFn(to, token, resetURL)
}
