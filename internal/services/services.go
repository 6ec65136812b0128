package services

import (
	"context"
	"database/sql"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/repositories"
)

// AgencyService manages the agencies vehicles are picked up from and returned to.
type AgencyService interface {
	ListAgencies(ctx context.Context) ([]*models.Agency, error)
	GetAgency(ctx context.Context, id string) (*models.Agency, error)
	CreateAgency(ctx context.Context, agency *models.Agency) error
}

// VehicleService manages the fleet.
type VehicleService interface {
	// ListVehicles returns every vehicle, or only those parked at agencyID when it is set.
	ListVehicles(ctx context.Context, agencyID string) ([]*models.Vehicle, error)
	// ListAvailableVehicles returns the vehicles at agencyID that can be rented now.
	ListAvailableVehicles(ctx context.Context, agencyID string) ([]*models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
}

// CustomerService manages the people and companies that rent vehicles.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
}

// RentalService opens and closes rentals.
type RentalService interface {
	// CreateRental hands vehicle to customer at agency from pickup until the estimated return.
	CreateRental(ctx context.Context, customer *models.Customer, vehicle *models.Vehicle, agency *models.Agency, pickup, estimatedReturn time.Time) (*models.Rental, error)
	// CloseRental records the return of rental at agency and prices it.
	CloseRental(ctx context.Context, rental *models.Rental, agency *models.Agency, at time.Time) error
	ListOpenRentals(ctx context.Context) ([]*models.Rental, error)
	ListRentals(ctx context.Context) ([]*models.Rental, error)
}

// Services bundles the implementations the console and CLI depend on.
type Services struct {
	Agencies  AgencyService
	Vehicles  VehicleService
	Customers CustomerService
	Rentals   RentalService
}

// New wires every service to db. A nil logger discards service logs.
func New(db *sql.DB, logger *log.Logger) *Services {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	agencies := &Agencies{repo: repositories.NewAgencyRepository(db), logger: logger.WithPrefix("agencies")}
	vehicles := &Vehicles{
		repo:     repositories.NewVehicleRepository(db),
		agencies: agencies.repo,
		logger:   logger.WithPrefix("vehicles"),
	}
	customers := &Customers{repo: repositories.NewCustomerRepository(db), logger: logger.WithPrefix("customers")}
	rentals := &Rentals{
		repo:      repositories.NewRentalRepository(db),
		agencies:  agencies.repo,
		vehicles:  vehicles.repo,
		customers: customers.repo,
		logger:    logger.WithPrefix("rentals"),
	}

	return &Services{Agencies: agencies, Vehicles: vehicles, Customers: customers, Rentals: rentals}
}
