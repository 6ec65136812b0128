package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/services"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

// Setup writes the config file when missing, initializes the database and optionally seeds it.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil && cmd.Bool("force") {
		if err := os.Remove(configPath); err != nil {
			return fmt.Errorf("failed to replace config file: %w", err)
		}
	}

	if _, err := os.Stat(configPath); err != nil {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		r.logger.Info("config file created", "path", configPath)
	}

	r.logger.Info("initializing database")
	svc, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}

	version, _, err := shared.CurrentVersion(r.db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	r.logger.Infof("setup complete for database: %v (schema version %d)", r.config.Database.Path, version)

	if cmd.Bool("seed") {
		summary, err := services.Seed(ctx, svc)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		if summary == (services.SeedSummary{}) {
			r.logger.Warn("database already has agencies, skipping seed")
		} else {
			r.logger.Info("seeded database",
				"agencies", summary.Agencies, "vehicles", summary.Vehicles, "customers", summary.Customers)
		}
	}

	r.writePlain("✓ Database ready at %s\n", r.config.Database.Path)
	r.writePlainln("Next steps:")
	r.writePlain("1. Review %s\n", configPath)
	r.writePlain("2. Run 'locadora console' to start serving customers\n")
	return nil
}

// Migrate applies pending migrations, or rolls back the latest with --rollback.
func (r *Runner) Migrate(ctx context.Context, cmd *cli.Command) error {
	if !cmd.Bool("rollback") {
		if _, err := r.open(ctx, cmd); err != nil {
			return err
		}
	} else {
		if err := r.loadConfig(cmd); err != nil {
			return err
		}
		if r.db == nil {
			db, err := shared.NewDatabase(r.config.Database.Path)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			r.db = db
		}

		r.logger.Warn("rolling back latest migration", "db", r.config.Database.Path)
		if err := shared.RollbackMigration(r.db); err != nil {
			return fmt.Errorf("failed to roll back: %w", err)
		}
	}

	version, ok, err := shared.CurrentVersion(r.db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if !ok {
		return r.writePlain("No migrations applied\n")
	}
	return r.writePlain("Schema version %d\n", version)
}
