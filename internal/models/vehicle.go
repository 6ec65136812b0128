package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

// VehicleType classifies the fleet.
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleTruck      VehicleType = "truck"
)

// VehicleTypes lists every type in menu order.
var VehicleTypes = []VehicleType{VehicleCar, VehicleMotorcycle, VehicleTruck}

// ParseVehicleType accepts a type name or its 1-based position in [VehicleTypes].
func ParseVehicleType(s string) (VehicleType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(VehicleTypes) {
			return VehicleTypes[n-1], nil
		}
		return "", fmt.Errorf("%w: vehicle type %d does not exist", shared.ErrInvalidInput, n)
	}
	for _, t := range VehicleTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown vehicle type %q", shared.ErrInvalidInput, s)
}

func (t VehicleType) Valid() bool {
	for _, v := range VehicleTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Label is the display name of t.
func (t VehicleType) Label() string {
	switch t {
	case VehicleCar:
		return "Car"
	case VehicleMotorcycle:
		return "Motorcycle"
	case VehicleTruck:
		return "Truck"
	default:
		return string(t)
	}
}

// Vehicle is a rentable unit parked at an agency.
type Vehicle struct {
	Entity
	Type      VehicleType
	Plate     string
	Model     string
	Brand     string
	DailyRate decimal.Decimal
	AgencyID  string
	Available bool

	Agency *Agency // hydrated by services
}

func NewVehicle(sequence int, t VehicleType, plate, model, brand string, rate decimal.Decimal, agencyID string) *Vehicle {
	return &Vehicle{
		Entity:    newEntity(sequence),
		Type:      t,
		Plate:     NormalizePlate(plate),
		Model:     strings.TrimSpace(model),
		Brand:     strings.TrimSpace(brand),
		DailyRate: rate,
		AgencyID:  agencyID,
		Available: true,
	}
}

// NormalizePlate upper-cases a plate and strips separators, so "abc-1d23" and "ABC1D23" are the same vehicle.
func NormalizePlate(plate string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToUpper(strings.TrimSpace(plate)))
}

func (v *Vehicle) Validate() error {
	switch {
	case !v.Type.Valid():
		return fmt.Errorf("%w: unknown vehicle type %q", shared.ErrInvalidInput, v.Type)
	case len(v.Plate) != 7:
		return fmt.Errorf("%w: plate must have 7 characters, got %q", shared.ErrInvalidInput, v.Plate)
	case v.Model == "":
		return fmt.Errorf("%w: vehicle model is required", shared.ErrInvalidInput)
	case v.Brand == "":
		return fmt.Errorf("%w: vehicle brand is required", shared.ErrInvalidInput)
	case !v.DailyRate.IsPositive():
		return fmt.Errorf("%w: daily rate must be positive", shared.ErrInvalidInput)
	case v.AgencyID == "":
		return fmt.Errorf("%w: vehicle agency is required", shared.ErrInvalidInput)
	}
	return nil
}

// Describe renders brand, model and plate for receipts and summaries.
func (v *Vehicle) Describe() string {
	return fmt.Sprintf("%s %s (%s)", v.Brand, v.Model, v.Plate)
}
