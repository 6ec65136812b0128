package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
)

// SeedSummary counts the records created by [Seed].
type SeedSummary struct {
	Agencies  int
	Vehicles  int
	Customers int
}

type seedVehicle struct {
	agency int
	kind   models.VehicleType
	plate  string
	model  string
	brand  string
	rate   string
}

var (
	seedAgencies = [][3]string{
		{"Centro", "Av. Rio Branco, 100", "(21) 3333-1000"},
		{"Aeroporto", "Terminal 1, Galeão", "(21) 3333-2000"},
		{"Barra", "Av. das Américas, 5000", "(21) 3333-3000"},
	}
	seedVehicles = []seedVehicle{
		{0, models.VehicleCar, "ABC1D23", "Gol", "Volkswagen", "120.00"},
		{0, models.VehicleCar, "DEF4G56", "Onix", "Chevrolet", "135.50"},
		{0, models.VehicleMotorcycle, "GHI7J89", "CG 160", "Honda", "80.00"},
		{1, models.VehicleCar, "JKL0M12", "Corolla", "Toyota", "210.00"},
		{1, models.VehicleTruck, "MNO3P45", "Accelo", "Mercedes-Benz", "349.90"},
		{2, models.VehicleCar, "QRS6T78", "HB20", "Hyundai", "115.00"},
	}
	seedCustomers = []struct {
		kind                  models.CustomerType
		name, document, phone string
	}{
		{models.CustomerIndividual, "Ana Souza", "12345678901", "(21) 99999-0001"},
		{models.CustomerIndividual, "Bruno Lima", "98765432100", "(21) 99999-0002"},
		{models.CustomerCompany, "Transportes Rio Ltda", "12345678000190", "(21) 4004-0003"},
	}
)

// Seed fills an empty database with sample agencies, vehicles and customers. It does nothing when agencies exist.
func Seed(ctx context.Context, svc *Services) (SeedSummary, error) {
	var summary SeedSummary

	existing, err := svc.Agencies.ListAgencies(ctx)
	if err != nil {
		return summary, err
	}
	if len(existing) > 0 {
		return summary, nil
	}

	agencies := make([]*models.Agency, len(seedAgencies))
	for i, a := range seedAgencies {
		agencies[i] = models.NewAgency(0, a[0], a[1], a[2])
		if err := svc.Agencies.CreateAgency(ctx, agencies[i]); err != nil {
			return summary, fmt.Errorf("seed agency %s: %w", a[0], err)
		}
		summary.Agencies++
	}

	for _, v := range seedVehicles {
		rate := decimal.RequireFromString(v.rate)
		vehicle := models.NewVehicle(0, v.kind, v.plate, v.model, v.brand, rate, agencies[v.agency].ID())
		if err := svc.Vehicles.CreateVehicle(ctx, vehicle); err != nil {
			return summary, fmt.Errorf("seed vehicle %s: %w", v.plate, err)
		}
		summary.Vehicles++
	}

	for _, c := range seedCustomers {
		customer := models.NewCustomer(0, c.kind, c.name, c.document, c.phone)
		if err := svc.Customers.CreateCustomer(ctx, customer); err != nil {
			return summary, fmt.Errorf("seed customer %s: %w", c.name, err)
		}
		summary.Customers++
	}

	return summary, nil
}
