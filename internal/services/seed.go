package services

import (
	"context"
	"fmt"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/fixtures"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/repositories"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
)

// SeedOptions sizes a fake data load.
type SeedOptions struct {
	Venues  int
	Artists int
	Shows   int
	// Window bounds how far show start times fall from now, in either direction.
	Window time.Duration
}

// DefaultSeedOptions is the load used by `fyyur seed` without flags.
var DefaultSeedOptions = SeedOptions{Venues: 6, Artists: 8, Shows: 20, Window: 90 * 24 * time.Hour}

// Seed inserts fake venues, artists, and shows in one transaction.
//
// Shows pair a random artist with a random venue, so Shows must be zero
// unless both Venues and Artists are positive.
func (c *Catalog) Seed(ctx context.Context, faker *fixtures.Faker, opts SeedOptions) error {
	if opts.Shows > 0 && (opts.Venues <= 0 || opts.Artists <= 0) {
		return fmt.Errorf("%w: shows need at least one venue and one artist", shared.ErrInvalidArgument)
	}

	now := c.now()
	return c.session.InTx(ctx, func(store repositories.Store) error {
		venueIDs := make([]int64, 0, opts.Venues)
		for range opts.Venues {
			v := faker.Venue()
			if err := store.Venues.Create(ctx, &v); err != nil {
				return err
			}
			venueIDs = append(venueIDs, v.ID)
		}

		artistIDs := make([]int64, 0, opts.Artists)
		for range opts.Artists {
			a := faker.Artist()
			if err := store.Artists.Create(ctx, &a); err != nil {
				return err
			}
			artistIDs = append(artistIDs, a.ID)
		}

		for range opts.Shows {
			s := models.Show{
				ArtistID:  artistIDs[faker.Pick(len(artistIDs))],
				VenueID:   venueIDs[faker.Pick(len(venueIDs))],
				StartTime: faker.StartTime(now, opts.Window),
			}
			if err := store.Shows.Create(ctx, &s); err != nil {
				return err
			}
		}
		return nil
	})
}
