package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/store"
	"github.com/communication-ltd/portal/models"
)

// recentCustomersLimit bounds the customer listing to the most recently
// added records.
const recentCustomersLimit = 10

// emailPattern is a deliberately loose shape check: something before an
// @, something after, and a dot in the domain part. Real validation is
// delivery, not a regexp.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// customerService is the concrete implementation of CustomerService.
type customerService struct {
	customerRepository store.CustomerRepository

	logger *logger.Logger
}

// NewCustomerService constructs a CustomerService wired to the given
// CustomerRepository.
func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		logger:             logger,
	}
}

// Create validates and persists a new customer record.
//
// Field rejections are ordinary PolicyResult values; on success the
// returned customer carries its server-assigned ID and timestamp.
func (c *customerService) Create(ctx context.Context, customer models.Customer) (models.Customer, models.PolicyResult, error) {
	log := logger.FromContext(ctx)

	if customer.Name == "" || customer.Email == "" || customer.Phone == "" {
		return models.Customer{}, models.PolicyResult{Valid: false, Message: "All fields are required"}, nil
	}

	if !emailPattern.MatchString(customer.Email) {
		return models.Customer{}, models.PolicyResult{Valid: false, Message: "Invalid email format"}, nil
	}

	created, err := c.customerRepository.CreateCustomer(ctx, customer)
	if err != nil {
		log.Err(err).Msg("customer creation ended with error")
		return models.Customer{}, models.PolicyResult{}, fmt.Errorf("customer creation ended with error: %w", err)
	}

	log.Info().Int64("customer_id", created.ID).Msg("customer created")
	return created, models.PolicyResult{Valid: true, Message: "Customer added successfully"}, nil
}

// ListRecent returns the most recently added customers, newest first.
func (c *customerService) ListRecent(ctx context.Context) ([]models.Customer, error) {
	customers, err := c.customerRepository.ListRecentCustomers(ctx, recentCustomersLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("customer listing failed")
		return nil, fmt.Errorf("customer listing failed: %w", err)
	}

	return customers, nil
}
