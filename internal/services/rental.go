package services

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/repositories"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

// Rentals implements [RentalService].
type Rentals struct {
	repo      *repositories.RentalRepository
	agencies  *repositories.AgencyRepository
	vehicles  *repositories.VehicleRepository
	customers *repositories.CustomerRepository
	logger    *log.Logger
}

func (s *Rentals) CreateRental(ctx context.Context, customer *models.Customer, vehicle *models.Vehicle, agency *models.Agency, pickup, estimatedReturn time.Time) (*models.Rental, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case customer == nil || vehicle == nil || agency == nil:
		return nil, fmt.Errorf("%w: customer, vehicle and agency are required", shared.ErrMissingArgument)
	case !vehicle.Available:
		return nil, fmt.Errorf("%w: %s", shared.ErrVehicleUnavailable, vehicle.Plate)
	case vehicle.AgencyID != agency.ID():
		return nil, fmt.Errorf("%w: %s is not at %s", shared.ErrWrongAgency, vehicle.Plate, agency.Name)
	case !estimatedReturn.After(pickup):
		return nil, fmt.Errorf("%w: estimated return must be after pickup", shared.ErrInvalidPeriod)
	}

	rental := models.NewRental(0, customer, vehicle, agency, pickup, estimatedReturn)
	if err := s.repo.Open(rental); err != nil {
		return nil, fmt.Errorf("failed to open rental: %w", err)
	}

	s.logger.Info("opened rental",
		"sequence", rental.Sequence(), "vehicle", vehicle.Plate, "customer", customer.Document,
		"estimate", rental.EstimatedCost.StringFixed(2),
	)
	return rental, nil
}

// CloseRental prices a copy of rental and stores it, so a failed close leaves rental open.
func (s *Rentals) CloseRental(ctx context.Context, rental *models.Rental, agency *models.Agency, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rental == nil || agency == nil {
		return fmt.Errorf("%w: rental and return agency are required", shared.ErrMissingArgument)
	}

	closed := *rental
	if err := closed.Close(agency, at); err != nil {
		return err
	}
	if err := s.repo.Close(&closed); err != nil {
		return fmt.Errorf("failed to close rental: %w", err)
	}
	*rental = closed

	s.logger.Info("closed rental",
		"sequence", rental.Sequence(), "agency", agency.Name, "days", rental.Days(),
		"total", rental.TotalCost.Decimal.StringFixed(2),
	)
	return nil
}

func (s *Rentals) ListOpenRentals(ctx context.Context) ([]*models.Rental, error) {
	return s.list(ctx, map[string]any{"open": true})
}

func (s *Rentals) ListRentals(ctx context.Context) ([]*models.Rental, error) {
	return s.list(ctx, nil)
}

func (s *Rentals) list(ctx context.Context, criteria map[string]any) ([]*models.Rental, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rentals, err := s.repo.List(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}

	if err := s.hydrate(rentals); err != nil {
		return nil, err
	}

	s.logger.Debug("listed rentals", "criteria", criteria, "count", len(rentals))
	return rentals, nil
}

// hydrate fills the references of rentals. Vehicles are loaded with their current agency.
func (s *Rentals) hydrate(rentals []*models.Rental) error {
	agencies := newCache(s.agencies.Get)
	vehicles := newCache(s.vehicles.Get)
	customers := newCache(s.customers.Get)

	for _, r := range rentals {
		var err error
		if r.Customer, err = customers.get(r.CustomerID); err != nil {
			return fmt.Errorf("failed to load customer of rental %d: %w", r.Sequence(), err)
		}
		if r.Vehicle, err = vehicles.get(r.VehicleID); err != nil {
			return fmt.Errorf("failed to load vehicle of rental %d: %w", r.Sequence(), err)
		}
		if r.Vehicle.Agency, err = agencies.get(r.Vehicle.AgencyID); err != nil {
			return fmt.Errorf("failed to load agency of vehicle %s: %w", r.Vehicle.Plate, err)
		}
		if r.PickupAgency, err = agencies.get(r.PickupAgencyID); err != nil {
			return fmt.Errorf("failed to load pickup agency of rental %d: %w", r.Sequence(), err)
		}
		if r.ReturnAgencyID != "" {
			if r.ReturnAgency, err = agencies.get(r.ReturnAgencyID); err != nil {
				return fmt.Errorf("failed to load return agency of rental %d: %w", r.Sequence(), err)
			}
		}
	}
	return nil
}
