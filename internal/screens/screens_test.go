package screens

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/flow"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/services"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
	tu "github.com/Br3nOT/coders24-pooii-locadora/internal/testing"
)

var now = time.Date(2024, 5, 10, 9, 0, 0, 0, time.Local)

type harness struct {
	svc    *services.Services
	closer func() error
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db, err := shared.NewDatabase(shared.MemoryDatabase)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	svc := services.New(db, nil)
	if _, err := services.Seed(context.Background(), svc); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	return &harness{svc: svc, closer: db.Close}
}

// run drives the unit built by open through a scripted console.
func (h *harness) run(open func(*App) flow.Unit, lines ...string) (flow.Outcome, string, *tu.ScriptedReader) {
	console, buf, reader := tu.NewScriptedConsole(lines...)
	nav := flow.NewController(nil)
	app := New(flow.View{Console: console, Nav: nav}, h.svc, Options{
		PageSize:   2,
		DateLayout: "02/01/2006 15:04",
		Now:        func() time.Time { return now },
	})
	return nav.GoTo(context.Background(), open(app)), buf.String(), reader
}

func (h *harness) agencies(t *testing.T) []*models.Agency {
	t.Helper()
	agencies, err := h.svc.Agencies.ListAgencies(context.Background())
	if err != nil {
		t.Fatalf("failed to list agencies: %v", err)
	}
	return agencies
}

func (h *harness) availablePlates(t *testing.T, agency *models.Agency) []string {
	t.Helper()
	vehicles, err := h.svc.Vehicles.ListAvailableVehicles(context.Background(), agency.ID())
	if err != nil {
		t.Fatalf("failed to list vehicles: %v", err)
	}
	plates := make([]string, len(vehicles))
	for i, v := range vehicles {
		plates[i] = v.Plate
	}
	return plates
}

func TestMainMenu(t *testing.T) {
	h := newHarness(t)

	got, out, reader := h.run((*App).MainMenu, "4", "3", "x", "0", "0")

	if got.Kind != flow.OutcomeNone {
		t.Errorf("expected none, got %v", got)
	}
	if reader.Remaining() != 0 {
		t.Errorf("expected all input consumed, %d left", reader.Remaining())
	}
	for _, want := range []string{"MAIN MENU", "[0] Exit", "Main menu > Rentals", "OPEN RENTALS", "No rentals found."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMainMenuEndOfInput(t *testing.T) {
	h := newHarness(t)

	got, _, _ := h.run((*App).MainMenu, "1", "2")
	if !got.IsCancelled() {
		t.Errorf("expected cancelled when input ends, got %v", got)
	}
}

func TestAgencyList(t *testing.T) {
	t.Run("pages and filters", func(t *testing.T) {
		h := newHarness(t)

		_, out, _ := h.run(func(a *App) flow.Unit { return a.AgencyList(false) }, "a", "f", "barra", "x")

		for _, want := range []string{"Page 1 of 2", "Page 2 of 2", `1 agencies match "barra".`} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("modal select", func(t *testing.T) {
		h := newHarness(t)

		got, _, _ := h.run(func(a *App) flow.Unit { return a.AgencyList(true) }, "3")
		agency, ok := flow.ValueOf[*models.Agency](got)
		if !ok || agency.Name != "Barra" {
			t.Errorf("expected Barra selected, got %v", got)
		}
	})

	t.Run("fetch error", func(t *testing.T) {
		h := newHarness(t)
		h.closer()

		got, out, _ := h.run(func(a *App) flow.Unit { return a.AgencyList(false) }, "")
		if got.Kind != flow.OutcomeNone {
			t.Errorf("expected none, got %v", got)
		}
		if !strings.Contains(out, "Could not load agencies") {
			t.Errorf("expected load error:\n%s", out)
		}
	})
}

func TestRentalCreate(t *testing.T) {
	t.Run("rents an available vehicle", func(t *testing.T) {
		h := newHarness(t)

		got, out, reader := h.run((*App).RentalCreate, "1", "2", "1", "12/05/2024 10:00", "", "")

		if got.Kind != flow.OutcomeCommitted {
			t.Fatalf("expected committed, got %v\n%s", got, out)
		}
		rental, _ := flow.ValueOf[*models.Rental](got)
		if rental.Vehicle.Plate != "DEF4G56" || rental.Customer.Name != "Ana Souza" {
			t.Errorf("unexpected rental %+v", rental)
		}
		if !rental.EstimatedCost.Equal(decimal.RequireFromString("406.5")) {
			t.Errorf("expected estimate 406.50, got %s", rental.EstimatedCost)
		}
		for _, want := range []string{"Pickup date:", "10/05/2024 09:00", "R$ 406.50", "PICKUP RECEIPT - RENTAL #1"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if reader.Remaining() != 0 {
			t.Errorf("expected all input consumed, %d left", reader.Remaining())
		}

		centro := h.agencies(t)[0]
		if diff := cmp.Diff([]string{"ABC1D23", "GHI7J89"}, h.availablePlates(t, centro)); diff != "" {
			t.Errorf("available vehicles mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects bad dates in place", func(t *testing.T) {
		h := newHarness(t)

		got, out, _ := h.run((*App).RentalCreate, "1", "1", "1", "31/13/2024 10:00", "10/05/2024 08:00", "c")

		if !got.IsCancelled() {
			t.Errorf("expected cancelled, got %v", got)
		}
		for _, want := range []string{
			"invalid date, expected format dd/MM/yyyy HH:mm",
			"estimated return must be after 10/05/2024 09:00",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if open, _ := h.svc.Rentals.ListOpenRentals(context.Background()); len(open) != 0 {
			t.Errorf("expected no rentals, got %d", len(open))
		}
	})

	t.Run("agency without vehicles opens recovery", func(t *testing.T) {
		h := newHarness(t)
		agency := models.NewAgency(0, "Norte", "Rua 1", "")
		if err := h.svc.Agencies.CreateAgency(context.Background(), agency); err != nil {
			t.Fatalf("failed to create agency: %v", err)
		}

		got, out, _ := h.run((*App).RentalCreate, "4", "x", "1", "1", "1", "1", "12/05/2024 09:00", "", "")

		if got.Kind != flow.OutcomeCommitted {
			t.Fatalf("expected committed after retreat, got %v\n%s", got, out)
		}
		if !strings.Contains(out, "No vehicles found.") || !strings.Contains(out, "No vehicle selected.") {
			t.Errorf("expected empty list and recovery notice:\n%s", out)
		}
	})
}

func TestRentalClose(t *testing.T) {
	open := func(t *testing.T, h *harness) {
		t.Helper()
		ctx := context.Background()
		agencies := h.agencies(t)
		vehicles, _ := h.svc.Vehicles.ListAvailableVehicles(ctx, agencies[0].ID())
		customers, _ := h.svc.Customers.ListCustomers(ctx)
		if _, err := h.svc.Rentals.CreateRental(ctx, customers[1], vehicles[0], agencies[0], now, now.Add(24*time.Hour)); err != nil {
			t.Fatalf("failed to open rental: %v", err)
		}
	}

	t.Run("returns the vehicle at another agency", func(t *testing.T) {
		h := newHarness(t)
		open(t, h)

		got, out, _ := h.run((*App).RentalClose, "1", "3", "13/05/2024 07:00", "s", "")

		if got.Kind != flow.OutcomeCommitted {
			t.Fatalf("expected committed, got %v\n%s", got, out)
		}
		rental, _ := flow.ValueOf[*models.Rental](got)
		if rental.IsOpen() || !rental.TotalCost.Decimal.Equal(decimal.NewFromInt(360)) {
			t.Errorf("unexpected closed rental %+v", rental)
		}
		for _, want := range []string{"Confirm return?", "RETURN RECEIPT - RENTAL #1", "R$ 360.00", "Bruno Lima"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}

		barra := h.agencies(t)[2]
		if diff := cmp.Diff([]string{"ABC1D23", "QRS6T78"}, h.availablePlates(t, barra)); diff != "" {
			t.Errorf("vehicles at return agency mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("return date must follow pickup", func(t *testing.T) {
		h := newHarness(t)
		open(t, h)

		_, out, _ := h.run((*App).RentalClose, "1", "1", "09/05/2024 07:00", "c")
		if !strings.Contains(out, "return date must be after 10/05/2024 09:00") {
			t.Errorf("expected period error:\n%s", out)
		}
	})

	t.Run("nothing to close", func(t *testing.T) {
		h := newHarness(t)

		got, out, _ := h.run((*App).RentalClose, "x", "3")
		if !got.IsCancelled() {
			t.Errorf("expected cancelled, got %v", got)
		}
		if !strings.Contains(out, "No rental selected.") {
			t.Errorf("expected recovery notice:\n%s", out)
		}
	})
}

func TestVehicleCreate(t *testing.T) {
	t.Run("validates each field", func(t *testing.T) {
		h := newHarness(t)

		got, out, _ := h.run((*App).VehicleCreate,
			"2", "9", "3", "abc", "xyz-1a23", "Scania", "R450", "0", "499,90", "", "")

		if got.Kind != flow.OutcomeCommitted {
			t.Fatalf("expected committed, got %v\n%s", got, out)
		}
		for _, want := range []string{
			"vehicle type 9 does not exist",
			"plate must have 7 letters and digits",
			"daily rate must be greater than zero",
			"Vehicle #7 Scania R450 (XYZ1A23) registered at Aeroporto.",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}

		aero := h.agencies(t)[1]
		if diff := cmp.Diff([]string{"JKL0M12", "MNO3P45", "XYZ1A23"}, h.availablePlates(t, aero)); diff != "" {
			t.Errorf("vehicles mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("duplicate plate restarts the wizard", func(t *testing.T) {
		h := newHarness(t)

		got, out, _ := h.run((*App).VehicleCreate, "1", "1", "ABC1D23", "VW", "Gol", "100", "", "")

		if !got.IsCancelled() {
			t.Errorf("expected cancelled once input ends, got %v", got)
		}
		if !strings.Contains(out, "record already exists") {
			t.Errorf("expected duplicate error:\n%s", out)
		}
	})
}

func TestRegisterScreens(t *testing.T) {
	t.Run("agency", func(t *testing.T) {
		h := newHarness(t)

		got, out, _ := h.run((*App).AgencyCreate, "Norte", "Rua 1", "", "", "")
		if got.Kind != flow.OutcomeCommitted {
			t.Fatalf("expected committed, got %v\n%s", got, out)
		}
		if !strings.Contains(out, "Agency #4 Norte registered.") {
			t.Errorf("expected receipt:\n%s", out)
		}
	})

	t.Run("customer", func(t *testing.T) {
		h := newHarness(t)

		got, out, _ := h.run((*App).CustomerCreate, "3", "2", "ACME", "11.222.333/0001-81", "", "", "")
		if got.Kind != flow.OutcomeCommitted {
			t.Fatalf("expected committed, got %v\n%s", got, out)
		}
		customer, _ := flow.ValueOf[*models.Customer](got)
		if customer.Type != models.CustomerCompany || customer.Document != "11222333000181" {
			t.Errorf("unexpected customer %+v", customer)
		}
		if !strings.Contains(out, "choose 1 (individual) or 2 (company)") {
			t.Errorf("expected type error:\n%s", out)
		}
	})
}
