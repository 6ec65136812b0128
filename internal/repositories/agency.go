package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

const agencyColumns = "id, sequence, name, address, phone, created_at, updated_at, deleted_at"

// AgencyRepository implements [models.Repository] for [models.Agency] persistence.
type AgencyRepository struct {
	db *sql.DB
}

// NewAgencyRepository creates a new [AgencyRepository] with the given database connection
func NewAgencyRepository(db *sql.DB) *AgencyRepository {
	return &AgencyRepository{db: db}
}

// Create inserts a new agency into the database with generated ID and sequence
func (r *AgencyRepository) Create(agency *models.Agency) error {
	if err := agency.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "agencies")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	agency.SetID(shared.GenerateID())
	agency.SetSequence(sequence)

	query := `
		INSERT INTO agencies (id, sequence, name, address, phone, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, agency.ID(), sequence, agency.Name, agency.Address, agency.Phone, agency.CreatedAt(), agency.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert agency: %w", translate(err, agency.Name))
	}

	return nil
}

// Get retrieves an agency by ID, excluding soft-deleted agencies
func (r *AgencyRepository) Get(id string) (*models.Agency, error) {
	query := "SELECT " + agencyColumns + " FROM agencies WHERE id = ? AND deleted_at IS NULL"

	agency, err := scanAgency(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: agency %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query agency: %w", err)
	}

	return agency, nil
}

// Update modifies an existing agency in the database
func (r *AgencyRepository) Update(agency *models.Agency) error {
	if err := agency.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	agency.SetUpdatedAt(now)

	query := `
		UPDATE agencies
		SET name = ?, address = ?, phone = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, agency.Name, agency.Address, agency.Phone, now, agency.ID())
	if err != nil {
		return fmt.Errorf("failed to update agency: %w", err)
	}

	return affected(result, "agency", agency.ID())
}

// Delete soft-deletes an agency by ID
func (r *AgencyRepository) Delete(id string) error {
	return softDelete(r.db, "agencies", "agency", id)
}

// List retrieves all agencies matching the given criteria, excluding soft-deleted agencies.
//
// Supported criteria: "name" (substring, case-insensitive).
func (r *AgencyRepository) List(criteria map[string]any) ([]*models.Agency, error) {
	query := "SELECT " + agencyColumns + " FROM agencies WHERE deleted_at IS NULL"
	args := []any{}

	if name, ok := criteria["name"].(string); ok && name != "" {
		query += " AND name LIKE ?"
		args = append(args, "%"+name+"%")
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query agencies: %w", err)
	}
	defer rows.Close()

	var agencies []*models.Agency
	for rows.Next() {
		agency, err := scanAgency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agency: %w", err)
		}
		agencies = append(agencies, agency)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return agencies, nil
}

func scanAgency(s scanner) (*models.Agency, error) {
	var (
		id, name, address, phone string
		sequence                 int
		createdAt, updatedAt     time.Time
		deletedAt                sql.NullTime
	)

	if err := s.Scan(&id, &sequence, &name, &address, &phone, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	agency := models.NewAgency(sequence, name, address, phone)
	agency.SetID(id)
	agency.SetCreatedAt(createdAt)
	agency.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		agency.SetDeletedAt(&deletedAt.Time)
	}

	return agency, nil
}
