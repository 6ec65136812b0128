package services

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/repositories"
)

// Vehicles implements [VehicleService].
type Vehicles struct {
	repo     *repositories.VehicleRepository
	agencies *repositories.AgencyRepository
	logger   *log.Logger
}

func (s *Vehicles) ListVehicles(ctx context.Context, agencyID string) ([]*models.Vehicle, error) {
	criteria := map[string]any{}
	if agencyID != "" {
		criteria["agency_id"] = agencyID
	}
	return s.list(ctx, criteria)
}

func (s *Vehicles) ListAvailableVehicles(ctx context.Context, agencyID string) ([]*models.Vehicle, error) {
	return s.list(ctx, map[string]any{"agency_id": agencyID, "available": true})
}

// CreateVehicle stores a vehicle at an existing agency.
func (s *Vehicles) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	agency, err := s.agencies.Get(vehicle.AgencyID)
	if err != nil {
		return fmt.Errorf("failed to find agency: %w", err)
	}

	if err := s.repo.Create(vehicle); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	vehicle.Agency = agency

	s.logger.Info("created vehicle", "id", vehicle.ID(), "plate", vehicle.Plate, "agency", agency.Name)
	return nil
}

func (s *Vehicles) list(ctx context.Context, criteria map[string]any) ([]*models.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vehicles, err := s.repo.List(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	agencies := newCache(s.agencies.Get)
	for _, v := range vehicles {
		if v.Agency, err = agencies.get(v.AgencyID); err != nil {
			return nil, fmt.Errorf("failed to load agency of vehicle %s: %w", v.Plate, err)
		}
	}

	s.logger.Debug("listed vehicles", "criteria", criteria, "count", len(vehicles))
	return vehicles, nil
}
