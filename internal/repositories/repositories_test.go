package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(shared.MemoryDatabase)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if _, err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func mustAgency(t *testing.T, db *sql.DB, name string) *models.Agency {
	t.Helper()
	a := models.NewAgency(0, name, "Rua "+name, "")
	if err := NewAgencyRepository(db).Create(a); err != nil {
		t.Fatalf("failed to create agency: %v", err)
	}
	return a
}

func mustVehicle(t *testing.T, db *sql.DB, plate string, agency *models.Agency) *models.Vehicle {
	t.Helper()
	v := models.NewVehicle(0, models.VehicleCar, plate, "Gol", "VW", decimal.NewFromInt(100), agency.ID())
	if err := NewVehicleRepository(db).Create(v); err != nil {
		t.Fatalf("failed to create vehicle: %v", err)
	}
	return v
}

func mustCustomer(t *testing.T, db *sql.DB, doc string) *models.Customer {
	t.Helper()
	c := models.NewCustomer(0, models.CustomerIndividual, "Ana", doc, "")
	if err := NewCustomerRepository(db).Create(c); err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}
	return c
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)

	for want := 1; want <= 3; want++ {
		got, err := NextSequence(db, "agencies")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("expected sequence %d, got %d", want, got)
		}
	}

	if _, err := NextSequence(db, "missing"); err == nil {
		t.Error("expected error for unknown table")
	}
}

func TestAgencyRepository(t *testing.T) {
	t.Run("Create and Get", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAgencyRepository(db)
		a := mustAgency(t, db, "Centro")

		if a.ID() == "" || a.Sequence() != 1 {
			t.Errorf("expected id and sequence 1, got %q/%d", a.ID(), a.Sequence())
		}

		got, err := repo.Get(a.ID())
		if err != nil {
			t.Fatalf("failed to get agency: %v", err)
		}
		if got.Name != "Centro" || got.Address != "Rua Centro" {
			t.Errorf("unexpected agency %+v", got)
		}
	})

	t.Run("Create validates", func(t *testing.T) {
		db := setupTestDB(t)
		err := NewAgencyRepository(db).Create(models.NewAgency(0, "", "x", ""))
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Get missing", func(t *testing.T) {
		db := setupTestDB(t)
		if _, err := NewAgencyRepository(db).Get("nope"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAgencyRepository(db)
		a := mustAgency(t, db, "Centro")

		a.Phone = "5555"
		if err := repo.Update(a); err != nil {
			t.Fatalf("failed to update: %v", err)
		}
		got, _ := repo.Get(a.ID())
		if got.Phone != "5555" {
			t.Errorf("expected phone updated, got %q", got.Phone)
		}
	})

	t.Run("Delete hides record", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAgencyRepository(db)
		a := mustAgency(t, db, "Centro")

		if err := repo.Delete(a.ID()); err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		if _, err := repo.Get(a.ID()); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected deleted agency hidden, got %v", err)
		}
		if err := repo.Delete(a.ID()); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected second delete to fail, got %v", err)
		}
	})

	t.Run("List orders by sequence and filters by name", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAgencyRepository(db)
		mustAgency(t, db, "Centro")
		mustAgency(t, db, "Aeroporto")
		mustAgency(t, db, "Centro Sul")

		all, err := repo.List(nil)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(all) != 3 || all[0].Name != "Centro" || all[2].Name != "Centro Sul" {
			t.Errorf("unexpected order: %v", all)
		}

		filtered, _ := repo.List(map[string]any{"name": "centro"})
		if len(filtered) != 2 {
			t.Errorf("expected 2 matches, got %d", len(filtered))
		}
	})
}

func TestVehicleRepository(t *testing.T) {
	t.Run("round trip keeps decimal rate", func(t *testing.T) {
		db := setupTestDB(t)
		a := mustAgency(t, db, "Centro")
		v := models.NewVehicle(0, models.VehicleTruck, "xyz-9a87", "Accelo", "Mercedes", decimal.RequireFromString("349.90"), a.ID())

		repo := NewVehicleRepository(db)
		if err := repo.Create(v); err != nil {
			t.Fatalf("failed to create vehicle: %v", err)
		}

		got, err := repo.Get(v.ID())
		if err != nil {
			t.Fatalf("failed to get vehicle: %v", err)
		}
		if got.Plate != "XYZ9A87" || got.Type != models.VehicleTruck || !got.Available {
			t.Errorf("unexpected vehicle %+v", got)
		}
		if !got.DailyRate.Equal(decimal.RequireFromString("349.9")) {
			t.Errorf("expected rate 349.90, got %s", got.DailyRate)
		}
	})

	t.Run("duplicate plate", func(t *testing.T) {
		db := setupTestDB(t)
		a := mustAgency(t, db, "Centro")
		mustVehicle(t, db, "ABC1D23", a)

		dup := models.NewVehicle(0, models.VehicleCar, "abc-1d23", "Onix", "GM", decimal.NewFromInt(90), a.ID())
		if err := NewVehicleRepository(db).Create(dup); !errors.Is(err, shared.ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("unknown agency violates foreign key", func(t *testing.T) {
		db := setupTestDB(t)
		v := models.NewVehicle(0, models.VehicleCar, "ABC1D23", "Gol", "VW", decimal.NewFromInt(100), "ghost")
		if err := NewVehicleRepository(db).Create(v); err == nil {
			t.Error("expected foreign key error")
		}
	})

	t.Run("List by agency and availability", func(t *testing.T) {
		db := setupTestDB(t)
		centro := mustAgency(t, db, "Centro")
		aero := mustAgency(t, db, "Aeroporto")
		repo := NewVehicleRepository(db)

		mustVehicle(t, db, "AAA1A11", centro)
		taken := mustVehicle(t, db, "BBB2B22", centro)
		mustVehicle(t, db, "CCC3C33", aero)

		taken.Available = false
		if err := repo.Update(taken); err != nil {
			t.Fatalf("failed to update: %v", err)
		}

		got, err := repo.List(map[string]any{"agency_id": centro.ID(), "available": true})
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(got) != 1 || got[0].Plate != "AAA1A11" {
			t.Errorf("unexpected vehicles %v", got)
		}

		byPlate, _ := repo.List(map[string]any{"plate": "ccc-3c33"})
		if len(byPlate) != 1 || byPlate[0].AgencyID != aero.ID() {
			t.Errorf("expected lookup by plate, got %v", byPlate)
		}
	})
}

func TestCustomerRepository(t *testing.T) {
	t.Run("document lookup and uniqueness", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCustomerRepository(db)
		c := mustCustomer(t, db, "123.456.789-01")

		got, err := repo.List(map[string]any{"document": "12345678901"})
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(got) != 1 || got[0].ID() != c.ID() {
			t.Errorf("expected lookup by document, got %v", got)
		}

		dup := models.NewCustomer(0, models.CustomerIndividual, "Outra", "12345678901", "")
		if err := repo.Create(dup); !errors.Is(err, shared.ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("List by type", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCustomerRepository(db)
		mustCustomer(t, db, "12345678901")
		company := models.NewCustomer(0, models.CustomerCompany, "ACME", "12345678000190", "")
		if err := repo.Create(company); err != nil {
			t.Fatalf("failed to create company: %v", err)
		}

		got, _ := repo.List(map[string]any{"type": models.CustomerCompany})
		if len(got) != 1 || got[0].Name != "ACME" {
			t.Errorf("unexpected customers %v", got)
		}
	})
}

func TestRentalRepository(t *testing.T) {
	setup := func(t *testing.T) (*sql.DB, *models.Rental, *models.Agency) {
		t.Helper()
		db := setupTestDB(t)
		centro := mustAgency(t, db, "Centro")
		aero := mustAgency(t, db, "Aeroporto")
		v := mustVehicle(t, db, "ABC1D23", centro)
		c := mustCustomer(t, db, "12345678901")

		pickup := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		return db, models.NewRental(0, c, v, centro, pickup, pickup.Add(48*time.Hour)), aero
	}

	t.Run("Open reserves the vehicle", func(t *testing.T) {
		db, rental, _ := setup(t)
		repo := NewRentalRepository(db)

		if err := repo.Open(rental); err != nil {
			t.Fatalf("failed to open rental: %v", err)
		}
		if rental.Vehicle.Available {
			t.Error("expected in-memory vehicle marked unavailable")
		}

		v, _ := NewVehicleRepository(db).Get(rental.VehicleID)
		if v.Available {
			t.Error("expected stored vehicle marked unavailable")
		}

		got, err := repo.Get(rental.ID())
		if err != nil {
			t.Fatalf("failed to get rental: %v", err)
		}
		if !got.IsOpen() || !got.EstimatedCost.Equal(decimal.NewFromInt(200)) || got.TotalCost.Valid {
			t.Errorf("unexpected stored rental %+v", got)
		}
		if !got.PickupDate.Equal(rental.PickupDate) {
			t.Errorf("pickup date changed: %v vs %v", got.PickupDate, rental.PickupDate)
		}

		again := models.NewRental(0, rental.Customer, rental.Vehicle, rental.PickupAgency, rental.PickupDate, rental.EstimatedReturnDate)
		if err := repo.Open(again); !errors.Is(err, shared.ErrVehicleUnavailable) {
			t.Errorf("expected ErrVehicleUnavailable, got %v", err)
		}
		if again.ID() != "" {
			t.Error("failed open should not assign an id")
		}
	})

	t.Run("Close returns the vehicle to the return agency", func(t *testing.T) {
		db, rental, aero := setup(t)
		repo := NewRentalRepository(db)
		if err := repo.Open(rental); err != nil {
			t.Fatalf("failed to open rental: %v", err)
		}

		if err := rental.Close(aero, rental.PickupDate.Add(72*time.Hour)); err != nil {
			t.Fatalf("failed to close in memory: %v", err)
		}
		if err := repo.Close(rental); err != nil {
			t.Fatalf("failed to close rental: %v", err)
		}

		v, _ := NewVehicleRepository(db).Get(rental.VehicleID)
		if !v.Available || v.AgencyID != aero.ID() {
			t.Errorf("expected vehicle available at return agency, got %+v", v)
		}

		open, _ := repo.List(map[string]any{"open": true})
		closed, _ := repo.List(map[string]any{"open": false})
		if len(open) != 0 || len(closed) != 1 {
			t.Errorf("expected 0 open and 1 closed, got %d/%d", len(open), len(closed))
		}
		if !closed[0].TotalCost.Decimal.Equal(decimal.NewFromInt(300)) || closed[0].ReturnAgencyID != aero.ID() {
			t.Errorf("unexpected closed rental %+v", closed[0])
		}

		if err := repo.Close(rental); !errors.Is(err, shared.ErrRentalClosed) {
			t.Errorf("expected ErrRentalClosed, got %v", err)
		}
	})

	t.Run("Close requires a return date", func(t *testing.T) {
		db, rental, _ := setup(t)
		if err := NewRentalRepository(db).Close(rental); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Create, Update and Delete", func(t *testing.T) {
		db, rental, _ := setup(t)
		repo := NewRentalRepository(db)

		if err := repo.Create(rental); err != nil {
			t.Fatalf("failed to create rental: %v", err)
		}
		rental.EstimatedReturnDate = rental.PickupDate.Add(96 * time.Hour)
		rental.EstimatedCost = decimal.NewFromInt(400)
		if err := repo.Update(rental); err != nil {
			t.Fatalf("failed to update rental: %v", err)
		}

		got, _ := repo.Get(rental.ID())
		if !got.EstimatedCost.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected updated cost, got %s", got.EstimatedCost)
		}

		if err := repo.Delete(rental.ID()); err != nil {
			t.Fatalf("failed to delete rental: %v", err)
		}
		if list, _ := repo.List(nil); len(list) != 0 {
			t.Errorf("expected deleted rental hidden, got %d", len(list))
		}
	})
}
