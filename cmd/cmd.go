// submodule cmd contains command definitions
package main

import (
	"github.com/IvanCheng1/Venue-Booking-Site/internal/services"
	"github.com/urfave/cli/v3"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// serveCommand runs the booking site.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the booking site over HTTP",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "host",
				Usage: "Listen host (overrides server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (overrides server.port)",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the site in a browser once listening",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles setup operations for database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recent migration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupRollback,
			},
			{
				Name:   "status",
				Usage:  "List applied migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupStatus,
			},
			{
				Name:  "config",
				Usage: "Write an example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path of the file to create",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// seedCommand fills the database with fake records.
func seedCommand(r *Runner) *cli.Command {
	opts := services.DefaultSeedOptions
	return &cli.Command{
		Name:  "seed",
		Usage: "Insert fake venues, artists and shows",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "venues",
				Usage: "Number of venues to create",
				Value: opts.Venues,
			},
			&cli.IntFlag{
				Name:  "artists",
				Usage: "Number of artists to create",
				Value: opts.Artists,
			},
			&cli.IntFlag{
				Name:  "shows",
				Usage: "Number of shows to create",
				Value: opts.Shows,
			},
			&cli.DurationFlag{
				Name:  "window",
				Usage: "How far show start times may fall from now, either way",
				Value: opts.Window,
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "Random seed (0 picks one)",
			},
		},
		Action: r.Seed,
	}
}

// statsCommand prints record counts.
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Count venues, artists and shows",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Stats,
	}
}

// exportCommand writes listings to CSV, Markdown or JSON.
func exportCommand(r *Runner) *cli.Command {
	flags := func() []cli.Flag {
		return []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: csv, markdown or json",
				Value:   "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (stdout when empty)",
			},
			&cli.BoolFlag{
				Name:  "file",
				Usage: "Write to a default-named file when --output is empty",
			},
		}
	}
	return &cli.Command{
		Name:  "export",
		Usage: "Export listings",
		Commands: []*cli.Command{
			{
				Name:   "venues",
				Usage:  "Export venues grouped by city and state",
				Flags:  flags(),
				Action: r.ExportVenues,
			},
			{
				Name:   "shows",
				Usage:  "Export upcoming shows",
				Flags:  flags(),
				Action: r.ExportShows,
			},
			{
				Name:  "all",
				Usage: "Export venues and upcoming shows to a directory with a manifest",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: csv, markdown or json",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Usage:   "Output directory (default: fyyur_export_{epoch})",
					},
				},
				Action: r.ExportAll,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Browse venues, artists and shows in the terminal",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Where logs go while the TUI owns the terminal",
				Value: "./tmp/fyyur-tui.log",
			},
		},
		Action: r.TUI,
	}
}
