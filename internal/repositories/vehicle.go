package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

const vehicleColumns = "id, sequence, type, plate, model, brand, daily_rate, agency_id, available, created_at, updated_at, deleted_at"

// VehicleRepository implements [models.Repository] for [models.Vehicle] persistence.
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository creates a new [VehicleRepository] with the given database connection
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create inserts a new vehicle with generated ID and sequence. Plates are unique.
func (r *VehicleRepository) Create(vehicle *models.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "vehicles")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	vehicle.SetID(shared.GenerateID())
	vehicle.SetSequence(sequence)

	query := `
		INSERT INTO vehicles (id, sequence, type, plate, model, brand, daily_rate, agency_id, available, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		vehicle.ID(), sequence, string(vehicle.Type), vehicle.Plate, vehicle.Model, vehicle.Brand,
		vehicle.DailyRate, vehicle.AgencyID, vehicle.Available, vehicle.CreatedAt(), vehicle.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", translate(err, "plate "+vehicle.Plate))
	}

	return nil
}

// Get retrieves a vehicle by ID, excluding soft-deleted vehicles
func (r *VehicleRepository) Get(id string) (*models.Vehicle, error) {
	query := "SELECT " + vehicleColumns + " FROM vehicles WHERE id = ? AND deleted_at IS NULL"

	vehicle, err := scanVehicle(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: vehicle %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle: %w", err)
	}

	return vehicle, nil
}

// Update modifies an existing vehicle, including its agency and availability
func (r *VehicleRepository) Update(vehicle *models.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	vehicle.SetUpdatedAt(now)

	query := `
		UPDATE vehicles
		SET type = ?, plate = ?, model = ?, brand = ?, daily_rate = ?, agency_id = ?, available = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		string(vehicle.Type), vehicle.Plate, vehicle.Model, vehicle.Brand, vehicle.DailyRate,
		vehicle.AgencyID, vehicle.Available, now, vehicle.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", translate(err, "plate "+vehicle.Plate))
	}

	return affected(result, "vehicle", vehicle.ID())
}

// Delete soft-deletes a vehicle by ID
func (r *VehicleRepository) Delete(id string) error {
	return softDelete(r.db, "vehicles", "vehicle", id)
}

// List retrieves all vehicles matching the given criteria, excluding soft-deleted vehicles.
//
// Supported criteria: "agency_id" (string), "available" (bool), "plate" (string, normalized).
func (r *VehicleRepository) List(criteria map[string]any) ([]*models.Vehicle, error) {
	query := "SELECT " + vehicleColumns + " FROM vehicles WHERE deleted_at IS NULL"
	args := []any{}

	if agencyID, ok := criteria["agency_id"].(string); ok && agencyID != "" {
		query += " AND agency_id = ?"
		args = append(args, agencyID)
	}
	if available, ok := criteria["available"].(bool); ok {
		query += " AND available = ?"
		args = append(args, available)
	}
	if plate, ok := criteria["plate"].(string); ok && plate != "" {
		query += " AND plate = ?"
		args = append(args, models.NormalizePlate(plate))
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*models.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return vehicles, nil
}

func scanVehicle(s scanner) (*models.Vehicle, error) {
	var (
		id, vtype, plate, model, brand, agencyID string
		sequence                                 int
		rate                                     decimal.Decimal
		available                                bool
		createdAt, updatedAt                     time.Time
		deletedAt                                sql.NullTime
	)

	err := s.Scan(&id, &sequence, &vtype, &plate, &model, &brand, &rate, &agencyID, &available, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}

	vehicle := models.NewVehicle(sequence, models.VehicleType(vtype), plate, model, brand, rate, agencyID)
	vehicle.Available = available
	vehicle.SetID(id)
	vehicle.SetCreatedAt(createdAt)
	vehicle.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		vehicle.SetDeletedAt(&deletedAt.Time)
	}

	return vehicle, nil
}
