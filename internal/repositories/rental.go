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

const rentalColumns = `id, sequence, customer_id, vehicle_id, pickup_agency_id, return_agency_id, pickup_date,
	estimated_return_date, return_date, daily_rate, estimated_cost, total_cost, created_at, updated_at, deleted_at`

// RentalRepository implements [models.Repository] for [models.Rental] persistence.
//
// [RentalRepository.Open] and [RentalRepository.Close] also move the rented vehicle in the same transaction.
type RentalRepository struct {
	db *sql.DB
}

// NewRentalRepository creates a new [RentalRepository] with the given database connection
func NewRentalRepository(db *sql.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

// Create inserts a rental with generated ID and sequence without touching the vehicle.
func (r *RentalRepository) Create(rental *models.Rental) error {
	if err := rental.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertRental(tx, rental); err != nil {
		return err
	}

	return tx.Commit()
}

// Open inserts rental and marks its vehicle unavailable. It fails with [shared.ErrVehicleUnavailable] when the
// vehicle was taken in the meantime.
func (r *RentalRepository) Open(rental *models.Rental) error {
	if err := rental.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"UPDATE vehicles SET available = 0, updated_at = ? WHERE id = ? AND available = 1 AND deleted_at IS NULL",
		time.Now(), rental.VehicleID,
	)
	if err != nil {
		return fmt.Errorf("failed to reserve vehicle: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	} else if n == 0 {
		return shared.ErrVehicleUnavailable
	}

	if err := insertRental(tx, rental); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rental: %w", err)
	}
	if rental.Vehicle != nil {
		rental.Vehicle.Available = false
	}
	return nil
}

// Close stores the return of a closed rental and parks its vehicle, available again, at the return agency.
func (r *RentalRepository) Close(rental *models.Rental) error {
	if rental.IsOpen() {
		return fmt.Errorf("%w: rental %d has no return date", shared.ErrInvalidInput, rental.Sequence())
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	result, err := tx.Exec(`
		UPDATE rentals
		SET return_agency_id = ?, return_date = ?, total_cost = ?, updated_at = ?
		WHERE id = ? AND return_date IS NULL AND deleted_at IS NULL
	`, rental.ReturnAgencyID, *rental.ReturnDate, rental.TotalCost, now, rental.ID())
	if err != nil {
		return fmt.Errorf("failed to close rental: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	} else if n == 0 {
		return shared.ErrRentalClosed
	}

	_, err = tx.Exec(
		"UPDATE vehicles SET available = 1, agency_id = ?, updated_at = ? WHERE id = ?",
		rental.ReturnAgencyID, now, rental.VehicleID,
	)
	if err != nil {
		return fmt.Errorf("failed to return vehicle: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit return: %w", err)
	}

	rental.SetUpdatedAt(now)
	if rental.Vehicle != nil {
		rental.Vehicle.Available = true
		rental.Vehicle.AgencyID = rental.ReturnAgencyID
		rental.Vehicle.Agency = rental.ReturnAgency
	}
	return nil
}

// Get retrieves a rental by ID, excluding soft-deleted rentals
func (r *RentalRepository) Get(id string) (*models.Rental, error) {
	query := "SELECT " + rentalColumns + " FROM rentals WHERE id = ? AND deleted_at IS NULL"

	rental, err := scanRental(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: rental %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query rental: %w", err)
	}

	return rental, nil
}

// Update rewrites the dates and prices of a rental
func (r *RentalRepository) Update(rental *models.Rental) error {
	if err := rental.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	rental.SetUpdatedAt(now)

	query := `
		UPDATE rentals
		SET return_agency_id = ?, estimated_return_date = ?, return_date = ?, daily_rate = ?, estimated_cost = ?,
			total_cost = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		nullString(rental.ReturnAgencyID), rental.EstimatedReturnDate, rental.ReturnDate, rental.DailyRate,
		rental.EstimatedCost, rental.TotalCost, now, rental.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update rental: %w", err)
	}

	return affected(result, "rental", rental.ID())
}

// Delete soft-deletes a rental by ID
func (r *RentalRepository) Delete(id string) error {
	return softDelete(r.db, "rentals", "rental", id)
}

// List retrieves all rentals matching the given criteria, excluding soft-deleted rentals.
//
// Supported criteria: "open" (bool), "customer_id" (string), "vehicle_id" (string).
func (r *RentalRepository) List(criteria map[string]any) ([]*models.Rental, error) {
	query := "SELECT " + rentalColumns + " FROM rentals WHERE deleted_at IS NULL"
	args := []any{}

	if open, ok := criteria["open"].(bool); ok {
		if open {
			query += " AND return_date IS NULL"
		} else {
			query += " AND return_date IS NOT NULL"
		}
	}
	if customerID, ok := criteria["customer_id"].(string); ok && customerID != "" {
		query += " AND customer_id = ?"
		args = append(args, customerID)
	}
	if vehicleID, ok := criteria["vehicle_id"].(string); ok && vehicleID != "" {
		query += " AND vehicle_id = ?"
		args = append(args, vehicleID)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rentals: %w", err)
	}
	defer rows.Close()

	var rentals []*models.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rental: %w", err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return rentals, nil
}

func insertRental(tx *sql.Tx, rental *models.Rental) error {
	sequence, err := nextSequence(tx, "rentals")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	rental.SetID(shared.GenerateID())
	rental.SetSequence(sequence)

	query := `
		INSERT INTO rentals (id, sequence, customer_id, vehicle_id, pickup_agency_id, return_agency_id, pickup_date,
			estimated_return_date, return_date, daily_rate, estimated_cost, total_cost, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.Exec(query,
		rental.ID(), sequence, rental.CustomerID, rental.VehicleID, rental.PickupAgencyID,
		nullString(rental.ReturnAgencyID), rental.PickupDate, rental.EstimatedReturnDate, rental.ReturnDate,
		rental.DailyRate, rental.EstimatedCost, rental.TotalCost, rental.CreatedAt(), rental.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert rental: %w", err)
	}

	return nil
}

func scanRental(s scanner) (*models.Rental, error) {
	var (
		rental                models.Rental
		id                    string
		sequence              int
		returnAgencyID        sql.NullString
		returnDate, deletedAt sql.NullTime
		rate, estimated       decimal.Decimal
		total                 decimal.NullDecimal
		createdAt, updatedAt  time.Time
	)

	err := s.Scan(
		&id, &sequence, &rental.CustomerID, &rental.VehicleID, &rental.PickupAgencyID, &returnAgencyID,
		&rental.PickupDate, &rental.EstimatedReturnDate, &returnDate, &rate, &estimated, &total,
		&createdAt, &updatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	rental.SetID(id)
	rental.SetSequence(sequence)
	rental.SetCreatedAt(createdAt)
	rental.SetUpdatedAt(updatedAt)
	rental.ReturnAgencyID = returnAgencyID.String
	rental.DailyRate = rate
	rental.EstimatedCost = estimated
	rental.TotalCost = total
	if returnDate.Valid {
		rental.ReturnDate = &returnDate.Time
	}
	if deletedAt.Valid {
		rental.SetDeletedAt(&deletedAt.Time)
	}

	return &rental, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
