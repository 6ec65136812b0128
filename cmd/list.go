package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/formatter"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/models"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

// ListAgencies prints every agency.
func (r *Runner) ListAgencies(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}

	agencies, err := svc.Agencies.ListAgencies(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") || cmd.Bool("pretty") {
		return r.writeJSON(formatter.Records(agencies, formatter.NewAgencyRecord), cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Agencies (%d)", len(agencies)))
	for _, a := range agencies {
		r.writePlain("%3d  %-20s %s\n", a.Sequence(), a.Name, a.Address)
	}
	return nil
}

// ListVehicles prints the fleet, optionally only what is parked (and free) at one agency.
func (r *Runner) ListVehicles(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}

	var agency *models.Agency
	if ref := cmd.String("agency"); ref != "" {
		if agency, err = r.findAgency(ctx, ref); err != nil {
			return err
		}
	} else if cmd.Bool("available") {
		return fmt.Errorf("%w: --available requires --agency", shared.ErrMissingArgument)
	}

	var vehicles []*models.Vehicle
	switch {
	case agency == nil:
		vehicles, err = svc.Vehicles.ListVehicles(ctx, "")
	case cmd.Bool("available"):
		vehicles, err = svc.Vehicles.ListAvailableVehicles(ctx, agency.ID())
	default:
		vehicles, err = svc.Vehicles.ListVehicles(ctx, agency.ID())
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") || cmd.Bool("pretty") {
		return r.writeJSON(formatter.Records(vehicles, formatter.NewVehicleRecord), cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Vehicles (%d)", len(vehicles)))
	for _, v := range vehicles {
		status := "available"
		if !v.Available {
			status = "rented"
		}
		r.writePlain("%-8s %-11s %-28s %12s  %-12s %s\n",
			v.Plate, v.Type.Label(), v.Brand+" "+v.Model, formatter.Money(v.DailyRate), v.Agency.Name, status)
	}
	return nil
}

// ListCustomers prints every customer.
func (r *Runner) ListCustomers(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}

	customers, err := svc.Customers.ListCustomers(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") || cmd.Bool("pretty") {
		return r.writeJSON(formatter.Records(customers, formatter.NewCustomerRecord), cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Customers (%d)", len(customers)))
	for _, c := range customers {
		r.writePlain("%3d  %-28s %-10s %s\n", c.Sequence(), c.Name, c.Type.Label(), c.Document)
	}
	return nil
}

// ListRentals prints rentals, or only the open ones with --open.
func (r *Runner) ListRentals(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}

	var rentals []*models.Rental
	if cmd.Bool("open") {
		rentals, err = svc.Rentals.ListOpenRentals(ctx)
	} else {
		rentals, err = svc.Rentals.ListRentals(ctx)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") || cmd.Bool("pretty") {
		return r.writeJSON(formatter.Records(rentals, formatter.NewRentalRecord), cmd.Bool("pretty"))
	}

	text, err := formatter.ExportToText(rentals, r.config.Console.DateLayout)
	if err != nil {
		return err
	}
	return r.writePlain("%s", text)
}

// ExportRentals writes every rental to a CSV or text file.
func (r *Runner) ExportRentals(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}

	rentals, err := svc.Rentals.ListRentals(ctx)
	if err != nil {
		return err
	}

	var path string
	switch format := strings.ToLower(cmd.String("format")); format {
	case "csv":
		path, err = formatter.WriteCSVExport(rentals, cmd.String("output"))
	case "text", "txt":
		path, err = r.writeTextExport(rentals, cmd.String("output"))
	default:
		return fmt.Errorf("%w: unknown format %q (use csv or text)", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	r.logger.Info("exported rentals", "count", len(rentals), "path", path)
	return r.writePlain("✓ Exported %d rentals to %s\n", len(rentals), path)
}

func (r *Runner) writeTextExport(rentals []*models.Rental, path string) (string, error) {
	if path == "" {
		path = "rentals.txt"
	}
	text, err := formatter.ExportToText(rentals, r.config.Console.DateLayout)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if err := os.WriteFile(path, text, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}
	return path, nil
}

// findAgency resolves an agency by its code or case-insensitive name.
func (r *Runner) findAgency(ctx context.Context, ref string) (*models.Agency, error) {
	agencies, err := r.services.Agencies.ListAgencies(ctx)
	if err != nil {
		return nil, err
	}

	code, codeErr := strconv.Atoi(ref)
	for _, a := range agencies {
		if (codeErr == nil && a.Sequence() == code) || strings.EqualFold(a.Name, ref) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: agency %q", shared.ErrNotFound, ref)
}
