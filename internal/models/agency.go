package models

import (
	"fmt"
	"strings"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

// Agency is a branch where vehicles are picked up and returned.
type Agency struct {
	Entity
	Name    string
	Address string
	Phone   string
}

func NewAgency(sequence int, name, address, phone string) *Agency {
	return &Agency{
		Entity:  newEntity(sequence),
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
		Phone:   strings.TrimSpace(phone),
	}
}

func (a *Agency) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: agency name is required", shared.ErrInvalidInput)
	}
	if a.Address == "" {
		return fmt.Errorf("%w: agency address is required", shared.ErrInvalidInput)
	}
	return nil
}

func (a *Agency) String() string { return a.Name }
