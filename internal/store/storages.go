package store

import "github.com/communication-ltd/portal/internal/logger"

// Storages bundles every repository backed by the shared database
// connection. The service layer depends on this struct rather than on the
// individual constructors.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	ResetRepository    ResetRepository
	HistoryRepository  HistoryRepository
	AttemptRepository  AttemptRepository
	CustomerRepository CustomerRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SessionRepository:  NewSessionRepository(db, logger),
		ResetRepository:    NewResetRepository(db, logger),
		HistoryRepository:  NewHistoryRepository(db, logger),
		AttemptRepository:  NewAttemptRepository(db, logger),
		CustomerRepository: NewCustomerRepository(db, logger),
	}
}
