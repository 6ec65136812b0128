// package formatter renders rentals as receipts and exports fleet data to CSV, JSON records and plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
)

// DateLayout is used when callers pass an empty layout.
const DateLayout = "02/01/2006 15:04"

// Money renders an amount in reais with two decimals.
func Money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// Date renders t with layout, or "" for the zero time.
func Date(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if layout == "" {
		layout = DateLayout
	}
	return t.Format(layout)
}

// PickupReceipt summarizes an opened rental for the customer.
func PickupReceipt(r *models.Rental, layout string) string {
	return receipt(fmt.Sprintf("PICKUP RECEIPT - RENTAL #%d", r.Sequence()), [][2]string{
		{"Customer", customerLine(r.Customer)},
		{"Vehicle", vehicleLine(r.Vehicle)},
		{"Pickup agency", agencyName(r.PickupAgency)},
		{"Pickup date", Date(r.PickupDate, layout)},
		{"Estimated return", Date(r.EstimatedReturnDate, layout)},
		{"Daily rate", Money(r.DailyRate)},
		{"Days", strconv.Itoa(r.Days())},
		{"Estimated cost", Money(r.EstimatedCost)},
	})
}

// ReturnReceipt summarizes a closed rental. Open rentals get the pickup receipt.
func ReturnReceipt(r *models.Rental, layout string) string {
	if r.IsOpen() {
		return PickupReceipt(r, layout)
	}
	return receipt(fmt.Sprintf("RETURN RECEIPT - RENTAL #%d", r.Sequence()), [][2]string{
		{"Customer", customerLine(r.Customer)},
		{"Vehicle", vehicleLine(r.Vehicle)},
		{"Pickup agency", agencyName(r.PickupAgency)},
		{"Return agency", agencyName(r.ReturnAgency)},
		{"Pickup date", Date(r.PickupDate, layout)},
		{"Return date", Date(*r.ReturnDate, layout)},
		{"Daily rate", Money(r.DailyRate)},
		{"Days", strconv.Itoa(r.Days())},
		{"Estimated cost", Money(r.EstimatedCost)},
		{"Total", Money(r.TotalCost.Decimal)},
	})
}

func receipt(title string, fields [][2]string) string {
	width := 0
	for _, f := range fields {
		width = max(width, runewidth.StringWidth(f[0]))
	}

	var buf strings.Builder
	buf.WriteString(title + "\n\n")
	for _, f := range fields {
		buf.WriteString(runewidth.FillRight(f[0]+":", width+2) + f[1] + "\n")
	}
	return buf.String()
}

func customerLine(c *models.Customer) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Document)
}

func vehicleLine(v *models.Vehicle) string {
	if v == nil {
		return ""
	}
	return v.Describe()
}

func agencyName(a *models.Agency) string {
	if a == nil {
		return ""
	}
	return a.Name
}

var rentalHeaders = []string{
	"Sequence", "Customer", "Document", "Plate", "Vehicle", "Pickup Agency", "Pickup Date",
	"Estimated Return", "Return Agency", "Return Date", "Daily Rate", "Estimated Cost", "Total Cost",
}

// ExportToCSV converts rentals to CSV with one header row. Dates use RFC 3339 so the file sorts and parses.
func ExportToCSV(rentals []*models.Rental) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(rentalHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, r := range rentals {
		rec := NewRentalRecord(r)
		record := []string{
			strconv.Itoa(rec.Sequence),
			rec.Customer,
			rec.Document,
			rec.Plate,
			rec.Vehicle,
			rec.PickupAgency,
			rec.PickupDate.Format(time.RFC3339),
			rec.EstimatedReturn.Format(time.RFC3339),
			rec.ReturnAgency,
			"",
			rec.DailyRate,
			rec.EstimatedCost,
			rec.TotalCost,
		}
		if rec.ReturnDate != nil {
			record[9] = rec.ReturnDate.Format(time.RFC3339)
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToText lists rentals one per line.
func ExportToText(rentals []*models.Rental, layout string) ([]byte, error) {
	var buf bytes.Buffer

	open := 0
	for _, r := range rentals {
		if r.IsOpen() {
			open++
		}
	}
	buf.WriteString(fmt.Sprintf("Rentals: %d (%d open)\n\n", len(rentals), open))

	for _, r := range rentals {
		rec := NewRentalRecord(r)
		status := "open, estimate " + Money(r.EstimatedCost)
		if !r.IsOpen() {
			status = "closed, total " + Money(r.TotalCost.Decimal)
		}
		buf.WriteString(fmt.Sprintf("#%d %s - %s [%s] since %s, %s\n",
			rec.Sequence, rec.Customer, rec.Plate, rec.PickupAgency, Date(r.PickupDate, layout), status))
	}

	return buf.Bytes(), nil
}

// WriteCSVExport writes the CSV export of rentals to path, defaulting to rentals.csv.
func WriteCSVExport(rentals []*models.Rental, path string) (string, error) {
	if path == "" {
		path = "rentals.csv"
	}

	data, err := ExportToCSV(rentals)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return path, nil
}
