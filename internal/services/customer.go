package services

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/repositories"
)

// Customers implements [CustomerService].
type Customers struct {
	repo   *repositories.CustomerRepository
	logger *log.Logger
}

func (s *Customers) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	customers, err := s.repo.List(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	s.logger.Debug("listed customers", "count", len(customers))
	return customers, nil
}

func (s *Customers) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.repo.Create(customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("created customer", "id", customer.ID(), "type", customer.Type)
	return nil
}
