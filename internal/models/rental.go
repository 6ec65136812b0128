package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

// Rental is a vehicle handed to a customer. It is open until it has a return date.
type Rental struct {
	Entity
	CustomerID          string
	VehicleID           string
	PickupAgencyID      string
	ReturnAgencyID      string
	PickupDate          time.Time
	EstimatedReturnDate time.Time
	ReturnDate          *time.Time
	DailyRate           decimal.Decimal
	EstimatedCost       decimal.Decimal
	TotalCost           decimal.NullDecimal

	// hydrated by services
	Customer     *Customer
	Vehicle      *Vehicle
	PickupAgency *Agency
	ReturnAgency *Agency
}

// NewRental prices an open rental of v from pickup until the estimated return.
func NewRental(sequence int, c *Customer, v *Vehicle, pickupAgency *Agency, pickup, estimatedReturn time.Time) *Rental {
	r := &Rental{
		Entity:              newEntity(sequence),
		CustomerID:          c.ID(),
		VehicleID:           v.ID(),
		PickupAgencyID:      pickupAgency.ID(),
		PickupDate:          pickup,
		EstimatedReturnDate: estimatedReturn,
		DailyRate:           v.DailyRate,
		Customer:            c,
		Vehicle:             v,
		PickupAgency:        pickupAgency,
	}
	r.EstimatedCost = Cost(r.DailyRate, pickup, estimatedReturn)
	return r
}

// Cost is the daily rate times the billable days between from and to.
func Cost(rate decimal.Decimal, from, to time.Time) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(shared.BillableDays(from, to))))
}

func (r *Rental) IsOpen() bool { return r.ReturnDate == nil }

// Days is the number of billable days, using the return date once closed.
func (r *Rental) Days() int {
	if r.ReturnDate != nil {
		return shared.BillableDays(r.PickupDate, *r.ReturnDate)
	}
	return shared.BillableDays(r.PickupDate, r.EstimatedReturnDate)
}

// Close records the return at agency and prices the rental by the actual period.
func (r *Rental) Close(agency *Agency, at time.Time) error {
	if !r.IsOpen() {
		return shared.ErrRentalClosed
	}
	if !at.After(r.PickupDate) {
		return fmt.Errorf("%w: return must be after pickup on %s", shared.ErrInvalidPeriod, r.PickupDate.Format(time.DateTime))
	}

	r.ReturnDate = &at
	r.ReturnAgencyID = agency.ID()
	r.ReturnAgency = agency
	r.TotalCost = decimal.NewNullDecimal(Cost(r.DailyRate, r.PickupDate, at))
	return nil
}

func (r *Rental) Validate() error {
	switch {
	case r.CustomerID == "":
		return fmt.Errorf("%w: rental customer is required", shared.ErrInvalidInput)
	case r.VehicleID == "":
		return fmt.Errorf("%w: rental vehicle is required", shared.ErrInvalidInput)
	case r.PickupAgencyID == "":
		return fmt.Errorf("%w: pickup agency is required", shared.ErrInvalidInput)
	case !r.EstimatedReturnDate.After(r.PickupDate):
		return fmt.Errorf("%w: estimated return must be after pickup", shared.ErrInvalidPeriod)
	case !r.DailyRate.IsPositive():
		return fmt.Errorf("%w: daily rate must be positive", shared.ErrInvalidInput)
	}
	return nil
}
