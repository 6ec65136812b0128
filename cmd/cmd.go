// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// rootConfigFlag is configFlag for the bare command, which opens the console. It stays local so subcommands
// keep their own copy.
func rootConfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
		Local:   true,
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
		},
	}
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the config file, initialize the database and run migrations",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "seed",
				Usage: "Fill an empty database with sample agencies, vehicles and customers",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file with the defaults",
			},
		},
		Action: r.Setup,
	}
}

func migrateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending migrations or roll back the latest one",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "rollback",
				Usage: "Roll back the most recent migration instead",
			},
		},
		Action: r.Migrate,
	}
}

func consoleCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "console",
		Aliases: []string{"ui"},
		Usage:   "Start the interactive operator console (default)",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.Console,
	}
}

func agenciesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "agencies",
		Usage: "Agency operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List agencies",
				Flags:  outputFlags(),
				Action: r.ListAgencies,
			},
		},
	}
}

func vehiclesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "vehicles",
		Usage: "Fleet operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List vehicles",
				Flags: append(outputFlags(),
					&cli.StringFlag{
						Name:    "agency",
						Aliases: []string{"a"},
						Usage:   "Only vehicles parked at this agency (name or code)",
					},
					&cli.BoolFlag{
						Name:  "available",
						Usage: "Only vehicles that can be rented now (requires --agency)",
					},
				),
				Action: r.ListVehicles,
			},
		},
	}
}

func customersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "customers",
		Usage: "Customer operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List customers",
				Flags:  outputFlags(),
				Action: r.ListCustomers,
			},
		},
	}
}

func rentalsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "rentals",
		Usage: "Rental operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List rentals",
				Flags: append(outputFlags(),
					&cli.BoolFlag{
						Name:  "open",
						Usage: "Only rentals not yet returned",
					},
				),
				Action: r.ListRentals,
			},
			{
				Name:  "export",
				Usage: "Export every rental to a file",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv or text",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.ExportRentals,
			},
		},
	}
}
