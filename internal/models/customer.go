package models

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

// CustomerType distinguishes people from companies; it decides the document format.
type CustomerType string

const (
	CustomerIndividual CustomerType = "individual"
	CustomerCompany    CustomerType = "company"
)

func (t CustomerType) Label() string {
	if t == CustomerCompany {
		return "Company"
	}
	return "Individual"
}

// documentLength is the digit count of a CPF (individuals) or CNPJ (companies).
func (t CustomerType) documentLength() int {
	if t == CustomerCompany {
		return 14
	}
	return 11
}

// Customer rents vehicles.
type Customer struct {
	Entity
	Type     CustomerType
	Name     string
	Document string
	Phone    string
}

func NewCustomer(sequence int, t CustomerType, name, document, phone string) *Customer {
	return &Customer{
		Entity:   newEntity(sequence),
		Type:     t,
		Name:     strings.TrimSpace(name),
		Document: NormalizeDocument(document),
		Phone:    strings.TrimSpace(phone),
	}
}

// NormalizeDocument keeps only the digits of a document number.
func NormalizeDocument(doc string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, doc)
}

func (c *Customer) Validate() error {
	if c.Type != CustomerIndividual && c.Type != CustomerCompany {
		return fmt.Errorf("%w: unknown customer type %q", shared.ErrInvalidInput, c.Type)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: customer name is required", shared.ErrInvalidInput)
	}
	if want := c.Type.documentLength(); len(c.Document) != want {
		return fmt.Errorf("%w: %s document must have %d digits", shared.ErrInvalidInput, strings.ToLower(c.Type.Label()), want)
	}
	return nil
}

func (c *Customer) String() string { return c.Name }
