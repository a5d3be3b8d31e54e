package main

import (
	"context"
	"fmt"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/fixtures"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/services"
	"github.com/urfave/cli/v3"
)

// Seed inserts fake records and reports the new totals.
func (r *Runner) Seed(ctx context.Context, cmd *cli.Command) error {
	catalog, session, err := r.catalog(ctx, cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	opts := services.SeedOptions{
		Venues:  int(cmd.Int("venues")),
		Artists: int(cmd.Int("artists")),
		Shows:   int(cmd.Int("shows")),
		Window:  cmd.Duration("window"),
	}

	r.logger.Info("seeding", "venues", opts.Venues, "artists", opts.Artists, "shows", opts.Shows)
	if err := catalog.Seed(ctx, fixtures.NewFaker(uint64(cmd.Int("seed"))), opts); err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	stats, err := catalog.Stats(ctx)
	if err != nil {
		return err
	}
	return r.writePlain("✓ Seeded %s\n", stats)
}

// Stats prints record counts.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	catalog, session, err := r.catalog(ctx, cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	stats, err := catalog.Stats(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, true)
	}
	return r.writePlain("%s\n", stats)
}
