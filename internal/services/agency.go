package services

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/repositories"
)

// Agencies implements [AgencyService].
type Agencies struct {
	repo   *repositories.AgencyRepository
	logger *log.Logger
}

func (s *Agencies) ListAgencies(ctx context.Context) ([]*models.Agency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agencies, err := s.repo.List(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list agencies: %w", err)
	}

	s.logger.Debug("listed agencies", "count", len(agencies))
	return agencies, nil
}

func (s *Agencies) GetAgency(ctx context.Context, id string) (*models.Agency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.Get(id)
}

func (s *Agencies) CreateAgency(ctx context.Context, agency *models.Agency) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.repo.Create(agency); err != nil {
		return fmt.Errorf("failed to create agency: %w", err)
	}

	s.logger.Info("created agency", "id", agency.ID(), "name", agency.Name)
	return nil
}
