package store

import (
	"context"
	"fmt"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/models"
)

// customerRepository is the PostgreSQL-backed implementation of
// [CustomerRepository].
type customerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCustomer persists a new customer record and returns it with
// server-assigned fields (ID, CreatedAt) populated from the RETURNING
// clause.
func (r *customerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCustomerQuery(customer)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error building query")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Bool("retryable", r.db.retryable(err)).Msg("error: row is nil")
		return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &customer.CreatedAt); err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error: scanning error")
		return models.Customer{}, err
	}

	return customer, nil
}

// ListRecentCustomers returns up to limit customers, newest first.
func (r *customerRepository) ListRecentCustomers(ctx context.Context, limit int) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecentCustomersQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.ListRecentCustomers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.ListRecentCustomers").Bool("retryable", r.db.retryable(err)).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var customer models.Customer
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &customer.CreatedAt); err != nil {
			log.Err(err).Str("func", "*customerRepository.ListRecentCustomers").Msg("error: scanning error")
			return nil, err
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*customerRepository.ListRecentCustomers").Msg("error iterating rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return customers, nil
}
