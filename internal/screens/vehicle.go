package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/flow"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/formatter"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
)

func vehicleColumns() []flow.Column[*models.Vehicle] {
	return []flow.Column[*models.Vehicle]{
		{Title: "Plate", Value: func(v *models.Vehicle) string { return v.Plate }},
		{Title: "Type", Value: func(v *models.Vehicle) string { return v.Type.Label() }},
		{Title: "Vehicle", Width: 28, Value: func(v *models.Vehicle) string { return v.Brand + " " + v.Model }},
		{Title: "Daily rate", Value: func(v *models.Vehicle) string { return formatter.Money(v.DailyRate) }},
		{Title: "Agency", Width: 20, Value: func(v *models.Vehicle) string {
			if v.Agency == nil {
				return ""
			}
			return v.Agency.Name
		}},
		{Title: "Status", Value: func(v *models.Vehicle) string {
			if v.Available {
				return "available"
			}
			return "rented"
		}},
	}
}

func vehicleKey(v *models.Vehicle) string {
	return strings.Join([]string{v.Plate, v.Brand, v.Model, string(v.Type)}, " ")
}

// VehicleList browses the whole fleet.
func (a *App) VehicleList() flow.Unit {
	return flow.NewListScreen(a.view, flow.ListOptions[*models.Vehicle]{
		Title: "Vehicles",
		Noun:  "vehicles",
		Fetch: func(ctx context.Context) ([]*models.Vehicle, error) {
			return a.svc.Vehicles.ListVehicles(ctx, "")
		},
		Key:      vehicleKey,
		Columns:  vehicleColumns(),
		PageSize: a.opts.PageSize,
	})
}

// AvailableVehicles picks a vehicle that can be rented at agencyID.
func (a *App) AvailableVehicles(agencyID string) *flow.ListScreen[*models.Vehicle] {
	return flow.NewListScreen(a.view, flow.ListOptions[*models.Vehicle]{
		Title: "Available vehicles",
		Noun:  "vehicles",
		Fetch: func(ctx context.Context) ([]*models.Vehicle, error) {
			return a.svc.Vehicles.ListAvailableVehicles(ctx, agencyID)
		},
		Key:      vehicleKey,
		Columns:  vehicleColumns()[:4],
		Modal:    true,
		PageSize: a.opts.PageSize,
	})
}

func parseVehicleType(s string) flow.Result[models.VehicleType] {
	return flow.From(models.ParseVehicleType(s))
}

func parsePlate(s string) flow.Result[string] {
	plate := models.NormalizePlate(s)
	if len(plate) != 7 {
		return flow.Failf[string]("plate must have 7 letters and digits, e.g. ABC1D23")
	}
	return flow.Ok(plate)
}

func parseRate(s string) flow.Result[decimal.Decimal] {
	return flow.Then(flow.ParseDecimal(s), func(d decimal.Decimal) flow.Result[decimal.Decimal] {
		if !d.IsPositive() {
			return flow.Failf[decimal.Decimal]("daily rate must be greater than zero")
		}
		return flow.Ok(d)
	})
}

func vehicleTypePrompt() string {
	var b strings.Builder
	b.WriteString("Type")
	for i, t := range models.VehicleTypes {
		fmt.Fprintf(&b, " [%d] %s", i+1, strings.ToLower(t.Label()))
	}
	b.WriteString(": ")
	return b.String()
}

// VehicleCreate registers a vehicle at a chosen agency.
func (a *App) VehicleCreate() flow.Unit {
	var (
		agency              *models.Agency
		kind                models.VehicleType
		plate, model, brand string
		rate                decimal.Decimal
	)

	return flow.NewWizard(a.view, flow.WizardOptions{
		Title: "New vehicle",
		Slots: []*flow.Slot{
			flow.Delegate("Agency", &agency, func() flow.Unit { return a.AgencyList(true) }, agencyName),
			flow.Input("Type", vehicleTypePrompt(), &kind, parseVehicleType, models.VehicleType.Label),
			flow.Input("Plate", "Plate: ", &plate, parsePlate, text),
			flow.Input("Brand", "Brand: ", &brand, flow.ParseText(true), text),
			flow.Input("Model", "Model: ", &model, flow.ParseText(true), text),
			flow.Input("Daily rate", "Daily rate (R$): ", &rate, parseRate, formatter.Money),
		},
		Submit: func(ctx context.Context) (string, any, error) {
			vehicle := models.NewVehicle(0, kind, plate, model, brand, rate, agency.ID())
			if err := a.svc.Vehicles.CreateVehicle(ctx, vehicle); err != nil {
				return "", nil, err
			}
			receipt := fmt.Sprintf("Vehicle #%d %s registered at %s.\nDaily rate: %s",
				vehicle.Sequence(), vehicle.Describe(), agency.Name, formatter.Money(vehicle.DailyRate))
			return receipt, vehicle, nil
		},
	})
}

func agencyName(ag *models.Agency) string { return ag.Name }
