package screens

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/flow"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
)

// CustomerList browses customers, or picks one when modal. The filter matches name and document.
func (a *App) CustomerList(modal bool) *flow.ListScreen[*models.Customer] {
	return flow.NewListScreen(a.view, flow.ListOptions[*models.Customer]{
		Title: "Customers",
		Noun:  "customers",
		Fetch: a.svc.Customers.ListCustomers,
		Key:   func(c *models.Customer) string { return c.Name + " " + c.Document },
		Columns: []flow.Column[*models.Customer]{
			{Title: "Code", Value: func(c *models.Customer) string { return strconv.Itoa(c.Sequence()) }},
			{Title: "Name", Width: 28, Value: func(c *models.Customer) string { return c.Name }},
			{Title: "Type", Value: func(c *models.Customer) string { return c.Type.Label() }},
			{Title: "Document", Value: func(c *models.Customer) string { return c.Document }},
			{Title: "Phone", Value: func(c *models.Customer) string { return c.Phone }},
		},
		Modal:    modal,
		PageSize: a.opts.PageSize,
	})
}

// parseCustomerType accepts 1 or 2, or the type name.
func parseCustomerType(s string) flow.Result[models.CustomerType] {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", string(models.CustomerIndividual):
		return flow.Ok(models.CustomerIndividual)
	case "2", string(models.CustomerCompany):
		return flow.Ok(models.CustomerCompany)
	}
	return flow.Failf[models.CustomerType]("choose 1 (individual) or 2 (company)")
}

func (a *App) CustomerCreate() flow.Unit {
	var (
		kind                  models.CustomerType
		name, document, phone string
	)

	return flow.NewWizard(a.view, flow.WizardOptions{
		Title: "New customer",
		Slots: []*flow.Slot{
			flow.Input("Type", "Type [1] individual [2] company: ", &kind, parseCustomerType, models.CustomerType.Label),
			flow.Input("Name", "Name: ", &name, flow.ParseText(true), text),
			flow.Input("Document", "CPF/CNPJ: ", &document, flow.ParseText(true), text),
			flow.Input("Phone", "Phone (optional): ", &phone, flow.ParseText(false), text),
		},
		Submit: func(ctx context.Context) (string, any, error) {
			customer := models.NewCustomer(0, kind, name, document, phone)
			if err := a.svc.Customers.CreateCustomer(ctx, customer); err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("Customer #%d %s registered.", customer.Sequence(), customer.Name), customer, nil
		},
	})
}
