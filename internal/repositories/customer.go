package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

const customerColumns = "id, sequence, type, name, document, phone, created_at, updated_at, deleted_at"

// CustomerRepository implements [models.Repository] for [models.Customer] persistence.
type CustomerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new [CustomerRepository] with the given database connection
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer with generated ID and sequence. Documents are unique.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "customers")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	customer.SetID(shared.GenerateID())
	customer.SetSequence(sequence)

	query := `
		INSERT INTO customers (id, sequence, type, name, document, phone, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		customer.ID(), sequence, string(customer.Type), customer.Name, customer.Document, customer.Phone,
		customer.CreatedAt(), customer.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", translate(err, "document "+customer.Document))
	}

	return nil
}

// Get retrieves a customer by ID, excluding soft-deleted customers
func (r *CustomerRepository) Get(id string) (*models.Customer, error) {
	query := "SELECT " + customerColumns + " FROM customers WHERE id = ? AND deleted_at IS NULL"

	customer, err := scanCustomer(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: customer %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return customer, nil
}

// Update modifies an existing customer in the database
func (r *CustomerRepository) Update(customer *models.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	customer.SetUpdatedAt(now)

	query := `
		UPDATE customers
		SET type = ?, name = ?, document = ?, phone = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, string(customer.Type), customer.Name, customer.Document, customer.Phone, now, customer.ID())
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", translate(err, "document "+customer.Document))
	}

	return affected(result, "customer", customer.ID())
}

// Delete soft-deletes a customer by ID
func (r *CustomerRepository) Delete(id string) error {
	return softDelete(r.db, "customers", "customer", id)
}

// List retrieves all customers matching the given criteria, excluding soft-deleted customers.
//
// Supported criteria: "document" (string, digits only are compared), "type" ([models.CustomerType]).
func (r *CustomerRepository) List(criteria map[string]any) ([]*models.Customer, error) {
	query := "SELECT " + customerColumns + " FROM customers WHERE deleted_at IS NULL"
	args := []any{}

	if doc, ok := criteria["document"].(string); ok && doc != "" {
		query += " AND document = ?"
		args = append(args, models.NormalizeDocument(doc))
	}
	if ctype, ok := criteria["type"].(models.CustomerType); ok && ctype != "" {
		query += " AND type = ?"
		args = append(args, string(ctype))
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return customers, nil
}

func scanCustomer(s scanner) (*models.Customer, error) {
	var (
		id, ctype, name, document, phone string
		sequence                         int
		createdAt, updatedAt             time.Time
		deletedAt                        sql.NullTime
	)

	if err := s.Scan(&id, &sequence, &ctype, &name, &document, &phone, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	customer := models.NewCustomer(sequence, models.CustomerType(ctype), name, document, phone)
	customer.SetID(id)
	customer.SetCreatedAt(createdAt)
	customer.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		customer.SetDeletedAt(&deletedAt.Time)
	}

	return customer, nil
}
