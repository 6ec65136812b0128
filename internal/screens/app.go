package screens

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/flow"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/formatter"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/services"
)

// Options tune how screens page and print dates.
type Options struct {
	PageSize   int
	DateLayout string
	// Now stamps pickups; defaults to [time.Now].
	Now    func() time.Time
	Logger *log.Logger
}

// App builds every screen of the console against one set of services.
type App struct {
	view   flow.View
	svc    *services.Services
	opts   Options
	logger *log.Logger
}

func New(v flow.View, svc *services.Services, opts Options) *App {
	if opts.PageSize <= 0 {
		opts.PageSize = 2
	}
	if opts.DateLayout == "" {
		opts.DateLayout = formatter.DateLayout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{view: v, svc: svc, opts: opts, logger: logger.WithPrefix("screens")}
}

// MainMenu is the root of the console. Choosing 0 ends the session.
func (a *App) MainMenu() flow.Unit {
	return flow.NewMenu(a.view, "Main menu", "Exit",
		flow.MenuItem{Label: "Agencies", Open: a.AgencyMenu},
		flow.MenuItem{Label: "Vehicles", Open: a.VehicleMenu},
		flow.MenuItem{Label: "Customers", Open: a.CustomerMenu},
		flow.MenuItem{Label: "Rentals", Open: a.RentalMenu},
	)
}

func (a *App) AgencyMenu() flow.Unit {
	return flow.NewMenu(a.view, "Agencies", "",
		flow.MenuItem{Label: "Add agency", Open: a.AgencyCreate},
		flow.MenuItem{Label: "List agencies", Open: func() flow.Unit { return a.AgencyList(false) }},
	)
}

func (a *App) VehicleMenu() flow.Unit {
	return flow.NewMenu(a.view, "Vehicles", "",
		flow.MenuItem{Label: "Add vehicle", Open: a.VehicleCreate},
		flow.MenuItem{Label: "List vehicles", Open: a.VehicleList},
	)
}

func (a *App) CustomerMenu() flow.Unit {
	return flow.NewMenu(a.view, "Customers", "",
		flow.MenuItem{Label: "Add customer", Open: a.CustomerCreate},
		flow.MenuItem{Label: "List customers", Open: func() flow.Unit { return a.CustomerList(false) }},
	)
}

func (a *App) RentalMenu() flow.Unit {
	return flow.NewMenu(a.view, "Rentals", "",
		flow.MenuItem{Label: "Rent a vehicle", Open: a.RentalCreate},
		flow.MenuItem{Label: "Return a vehicle", Open: a.RentalClose},
		flow.MenuItem{Label: "List open rentals", Open: func() flow.Unit { return a.OpenRentalList(false) }},
	)
}

func (a *App) date(t time.Time) string {
	return formatter.Date(t, a.opts.DateLayout)
}

func (a *App) datePrompt(label string) string {
	return fmt.Sprintf("%s (%s): ", label, flow.LayoutHint(a.opts.DateLayout))
}

// after parses a date that must follow *start.
func (a *App) after(start *time.Time, what string) func(string) flow.Result[time.Time] {
	parse := flow.ParseDateTime(a.opts.DateLayout)
	return func(text string) flow.Result[time.Time] {
		return flow.Then(parse(text), func(t time.Time) flow.Result[time.Time] {
			if !t.After(*start) {
				return flow.Failf[time.Time]("%s must be after %s", what, a.date(*start))
			}
			return flow.Ok(t)
		})
	}
}

func text(s string) string { return s }
