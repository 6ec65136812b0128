package screens

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/flow"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
)

// AgencyList browses agencies, or picks one when modal.
func (a *App) AgencyList(modal bool) *flow.ListScreen[*models.Agency] {
	return flow.NewListScreen(a.view, flow.ListOptions[*models.Agency]{
		Title: "Agencies",
		Noun:  "agencies",
		Fetch: a.svc.Agencies.ListAgencies,
		Key:   func(ag *models.Agency) string { return ag.Name + " " + ag.Address },
		Columns: []flow.Column[*models.Agency]{
			{Title: "Code", Value: func(ag *models.Agency) string { return strconv.Itoa(ag.Sequence()) }},
			{Title: "Name", Width: 24, Value: func(ag *models.Agency) string { return ag.Name }},
			{Title: "Address", Width: 32, Value: func(ag *models.Agency) string { return ag.Address }},
			{Title: "Phone", Value: func(ag *models.Agency) string { return ag.Phone }},
		},
		Modal:    modal,
		PageSize: a.opts.PageSize,
	})
}

func (a *App) AgencyCreate() flow.Unit {
	var name, address, phone string

	return flow.NewWizard(a.view, flow.WizardOptions{
		Title: "New agency",
		Slots: []*flow.Slot{
			flow.Input("Name", "Name: ", &name, flow.ParseText(true), text),
			flow.Input("Address", "Address: ", &address, flow.ParseText(true), text),
			flow.Input("Phone", "Phone (optional): ", &phone, flow.ParseText(false), text),
		},
		Submit: func(ctx context.Context) (string, any, error) {
			agency := models.NewAgency(0, name, address, phone)
			if err := a.svc.Agencies.CreateAgency(ctx, agency); err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("Agency #%d %s registered.", agency.Sequence(), agency.Name), agency, nil
		},
	})
}
