package screens

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/flow"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/formatter"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
)

// OpenRentalList browses rentals not yet returned, or picks one when modal.
func (a *App) OpenRentalList(modal bool) *flow.ListScreen[*models.Rental] {
	return flow.NewListScreen(a.view, flow.ListOptions[*models.Rental]{
		Title: "Open rentals",
		Noun:  "rentals",
		Fetch: a.svc.Rentals.ListOpenRentals,
		Key: func(r *models.Rental) string {
			return strconv.Itoa(r.Sequence()) + " " + r.Customer.Name + " " + r.Customer.Document + " " + r.Vehicle.Plate
		},
		Columns: []flow.Column[*models.Rental]{
			{Title: "Rental", Value: func(r *models.Rental) string { return strconv.Itoa(r.Sequence()) }},
			{Title: "Customer", Width: 24, Value: func(r *models.Rental) string { return r.Customer.Name }},
			{Title: "Plate", Value: func(r *models.Rental) string { return r.Vehicle.Plate }},
			{Title: "Pickup", Width: 16, Value: func(r *models.Rental) string { return r.PickupAgency.Name }},
			{Title: "Since", Value: func(r *models.Rental) string { return a.date(r.PickupDate) }},
			{Title: "Due", Value: func(r *models.Rental) string { return a.date(r.EstimatedReturnDate) }},
			{Title: "Estimate", Value: func(r *models.Rental) string { return formatter.Money(r.EstimatedCost) }},
		},
		Modal:    modal,
		PageSize: a.opts.PageSize,
	})
}

// RentalCreate hands an available vehicle to a customer, picked up now at the chosen agency.
func (a *App) RentalCreate() flow.Unit {
	var (
		agency        *models.Agency
		vehicle       *models.Vehicle
		customer      *models.Customer
		pickup, until time.Time
		estimate      decimal.Decimal
	)

	return flow.NewWizard(a.view, flow.WizardOptions{
		Title: "Rent a vehicle",
		Slots: []*flow.Slot{
			flow.Delegate("Agency", &agency, func() flow.Unit { return a.AgencyList(true) }, agencyName),
			flow.Delegate("Vehicle", &vehicle, func() flow.Unit { return a.AvailableVehicles(agency.ID()) }, (*models.Vehicle).Describe),
			flow.Delegate("Customer", &customer, func() flow.Unit { return a.CustomerList(true) }, customerName),
			flow.Derive("Pickup date", &pickup, a.opts.Now, a.date),
			flow.Input("Estimated return", a.datePrompt("Estimated return"), &until, a.after(&pickup, "estimated return"), a.date),
			flow.Derive("Estimated cost", &estimate, func() decimal.Decimal {
				return models.Cost(vehicle.DailyRate, pickup, until)
			}, formatter.Money),
		},
		Submit: func(ctx context.Context) (string, any, error) {
			rental, err := a.svc.Rentals.CreateRental(ctx, customer, vehicle, agency, pickup, until)
			if err != nil {
				a.logger.Warn("rental rejected", "plate", vehicle.Plate, "err", err)
				return "", nil, err
			}
			return formatter.PickupReceipt(rental, a.opts.DateLayout), rental, nil
		},
	})
}

// RentalClose records the return of an open rental at any agency and prices it by the days actually used.
func (a *App) RentalClose() flow.Unit {
	var (
		rental   *models.Rental
		agency   *models.Agency
		returned time.Time
		total    decimal.Decimal
	)

	returnDate := func(s string) flow.Result[time.Time] {
		return a.after(&rental.PickupDate, "return date")(s)
	}

	return flow.NewWizard(a.view, flow.WizardOptions{
		Title: "Return a vehicle",
		Slots: []*flow.Slot{
			flow.Delegate("Rental", &rental, func() flow.Unit { return a.OpenRentalList(true) }, rentalLine),
			flow.Delegate("Return agency", &agency, func() flow.Unit { return a.AgencyList(true) }, agencyName),
			flow.Input("Return date", a.datePrompt("Return date"), &returned, returnDate, a.date),
			flow.Derive("Total", &total, func() decimal.Decimal {
				return models.Cost(rental.DailyRate, rental.PickupDate, returned)
			}, formatter.Money),
		},
		Confirm: "Confirm return? (S/n): ",
		Submit: func(ctx context.Context) (string, any, error) {
			if err := a.svc.Rentals.CloseRental(ctx, rental, agency, returned); err != nil {
				a.logger.Warn("return rejected", "rental", rental.Sequence(), "err", err)
				return "", nil, err
			}
			return formatter.ReturnReceipt(rental, a.opts.DateLayout), rental, nil
		},
	})
}

func customerName(c *models.Customer) string { return c.Name }

func rentalLine(r *models.Rental) string {
	return fmt.Sprintf("#%d %s - %s", r.Sequence(), r.Customer.Name, r.Vehicle.Describe())
}
