package service

import (
	"github.com/communication-ltd/portal/internal/config"
	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/mail"
	"github.com/communication-ltd/portal/internal/store"
)

// Services bundles every business-logic service consumed by the HTTP
// handler layer.
type Services struct {
	PasswordPolicyService PasswordPolicyService
	ThrottleService       ThrottleService
	SessionService        SessionService
	HistoryService        HistoryService
	ResetService          ResetService
	AuthService           AuthService
	CustomerService       CustomerService
}

// NewServices wires all services to the given repositories, mail sender,
// and configuration.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, sender mail.Sender, logger *logger.Logger) *Services {
	policy := NewPasswordPolicyService(cfg.Auth, logger)
	history := NewHistoryService(storages.UserRepository, storages.HistoryRepository, cfg.Auth, logger)
	reset := NewResetService(storages.UserRepository, storages.ResetRepository, sender, cfg, logger)

	return &Services{
		PasswordPolicyService: policy,
		ThrottleService:       NewThrottleService(storages.AttemptRepository, cfg.Auth, logger),
		SessionService:        NewSessionService(storages.SessionRepository, cfg.Auth, logger),
		HistoryService:        history,
		ResetService:          reset,
		AuthService:           NewAuthService(storages.UserRepository, policy, history, reset, logger),
		CustomerService:       NewCustomerService(storages.CustomerRepository, logger),
	}
}
