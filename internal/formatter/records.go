package formatter

import (
	"time"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
)

// AgencyRecord is the JSON shape of an agency.
type AgencyRecord struct {
	ID       string `json:"id"`
	Sequence int    `json:"sequence"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone,omitempty"`
}

// VehicleRecord is the JSON shape of a vehicle.
type VehicleRecord struct {
	ID        string `json:"id"`
	Sequence  int    `json:"sequence"`
	Type      string `json:"type"`
	Plate     string `json:"plate"`
	Model     string `json:"model"`
	Brand     string `json:"brand"`
	DailyRate string `json:"daily_rate"`
	Agency    string `json:"agency"`
	Available bool   `json:"available"`
}

// CustomerRecord is the JSON shape of a customer.
type CustomerRecord struct {
	ID       string `json:"id"`
	Sequence int    `json:"sequence"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone,omitempty"`
}

// RentalRecord is the flat JSON and CSV shape of a rental. Amounts are decimal strings.
type RentalRecord struct {
	ID              string     `json:"id"`
	Sequence        int        `json:"sequence"`
	Customer        string     `json:"customer"`
	Document        string     `json:"document"`
	Plate           string     `json:"plate"`
	Vehicle         string     `json:"vehicle"`
	PickupAgency    string     `json:"pickup_agency"`
	PickupDate      time.Time  `json:"pickup_date"`
	EstimatedReturn time.Time  `json:"estimated_return"`
	ReturnAgency    string     `json:"return_agency,omitempty"`
	ReturnDate      *time.Time `json:"return_date,omitempty"`
	DailyRate       string     `json:"daily_rate"`
	EstimatedCost   string     `json:"estimated_cost"`
	TotalCost       string     `json:"total_cost,omitempty"`
}

func NewAgencyRecord(a *models.Agency) AgencyRecord {
	return AgencyRecord{ID: a.ID(), Sequence: a.Sequence(), Name: a.Name, Address: a.Address, Phone: a.Phone}
}

func NewVehicleRecord(v *models.Vehicle) VehicleRecord {
	return VehicleRecord{
		ID:        v.ID(),
		Sequence:  v.Sequence(),
		Type:      string(v.Type),
		Plate:     v.Plate,
		Model:     v.Model,
		Brand:     v.Brand,
		DailyRate: v.DailyRate.StringFixed(2),
		Agency:    agencyName(v.Agency),
		Available: v.Available,
	}
}

func NewCustomerRecord(c *models.Customer) CustomerRecord {
	return CustomerRecord{
		ID:       c.ID(),
		Sequence: c.Sequence(),
		Type:     string(c.Type),
		Name:     c.Name,
		Document: c.Document,
		Phone:    c.Phone,
	}
}

// NewRentalRecord flattens r. Missing references leave their columns empty.
func NewRentalRecord(r *models.Rental) RentalRecord {
	rec := RentalRecord{
		ID:              r.ID(),
		Sequence:        r.Sequence(),
		PickupAgency:    agencyName(r.PickupAgency),
		PickupDate:      r.PickupDate,
		EstimatedReturn: r.EstimatedReturnDate,
		ReturnAgency:    agencyName(r.ReturnAgency),
		ReturnDate:      r.ReturnDate,
		DailyRate:       r.DailyRate.StringFixed(2),
		EstimatedCost:   r.EstimatedCost.StringFixed(2),
	}
	if r.Customer != nil {
		rec.Customer = r.Customer.Name
		rec.Document = r.Customer.Document
	}
	if r.Vehicle != nil {
		rec.Plate = r.Vehicle.Plate
		rec.Vehicle = r.Vehicle.Brand + " " + r.Vehicle.Model
	}
	if r.TotalCost.Valid {
		rec.TotalCost = r.TotalCost.Decimal.StringFixed(2)
	}
	return rec
}

// Records maps items with fn, for JSON output of whole listings.
func Records[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, it := range items {
		out[i] = fn(it)
	}
	return out
}
