package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/listing"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/repositories"
)

// Catalog reads and writes the booking catalog through one session.
type Catalog struct {
	session *repositories.Session
	now     func() time.Time
}

// NewCatalog binds a catalog to session. A nil clock means [time.Now].
func NewCatalog(session *repositories.Session, now func() time.Time) *Catalog {
	if now == nil {
		now = time.Now
	}
	return &Catalog{session: session, now: now}
}

func (c *Catalog) store() repositories.Store { return c.session.Store() }

// Areas groups every venue by city and state.
func (c *Catalog) Areas(ctx context.Context) ([]listing.Area, error) {
	venues, err := c.store().Venues.List(ctx)
	if err != nil {
		return nil, err
	}
	return listing.GroupByArea(venues), nil
}

// Artists lists every artist by name.
func (c *Catalog) Artists(ctx context.Context) ([]models.ArtistSummary, error) {
	artists, err := c.store().Artists.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ArtistSummary, 0, len(artists))
	for _, a := range artists {
		summaries = append(summaries, a.Summary())
	}
	return summaries, nil
}

// SearchVenues matches venue names against term.
func (c *Catalog) SearchVenues(ctx context.Context, term string) (listing.SearchResult[models.VenueSummary], error) {
	rows, err := c.store().Venues.Summaries(ctx)
	if err != nil {
		return listing.SearchResult[models.VenueSummary]{}, err
	}
	return listing.Search(term, rows), nil
}

// SearchArtists matches artist names against term.
func (c *Catalog) SearchArtists(ctx context.Context, term string) (listing.SearchResult[models.ArtistSummary], error) {
	rows, err := c.store().Artists.Summaries(ctx)
	if err != nil {
		return listing.SearchResult[models.ArtistSummary]{}, err
	}
	return listing.Search(term, rows), nil
}

// Venue loads a stored venue, e.g. to pre-populate its edit form.
func (c *Catalog) Venue(ctx context.Context, id int64) (*models.Venue, error) {
	return c.store().Venues.Get(ctx, id)
}

// Artist loads a stored artist, e.g. to pre-populate its edit form.
func (c *Catalog) Artist(ctx context.Context, id int64) (*models.Artist, error) {
	return c.store().Artists.Get(ctx, id)
}

// VenueDetail assembles a venue's page with its shows split at the current time.
func (c *Catalog) VenueDetail(ctx context.Context, id int64) (*listing.VenueDetail, error) {
	store := c.store()
	venue, err := store.Venues.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := store.Shows.ForVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := listing.NewVenueDetail(c.now(), *venue, shows)
	return &detail, nil
}

// ArtistDetail assembles an artist's page with their shows split at the current time.
func (c *Catalog) ArtistDetail(ctx context.Context, id int64) (*listing.ArtistDetail, error) {
	store := c.store()
	artist, err := store.Artists.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := store.Shows.ForArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := listing.NewArtistDetail(c.now(), *artist, shows)
	return &detail, nil
}

// UpcomingShows lists every show that has not started yet, earliest first.
func (c *Catalog) UpcomingShows(ctx context.Context) ([]listing.UpcomingShow, error) {
	shows, err := c.store().Shows.List(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Upcoming(c.now(), shows), nil
}

// CreateVenue stores a new venue and sets its ID.
func (c *Catalog) CreateVenue(ctx context.Context, v *models.Venue) error {
	return c.write(ctx, KindVenue, v.Name, OpCreate, func(store repositories.Store) error {
		return store.Venues.Create(ctx, v)
	})
}

// UpdateVenue replaces every mutable field of the venue with v.ID.
func (c *Catalog) UpdateVenue(ctx context.Context, v *models.Venue) error {
	return c.write(ctx, KindVenue, v.Name, OpUpdate, func(store repositories.Store) error {
		if _, err := store.Venues.Get(ctx, v.ID); err != nil {
			return err
		}
		return store.Venues.Update(ctx, v)
	})
}

// DeleteVenue removes a venue together with its shows.
func (c *Catalog) DeleteVenue(ctx context.Context, id int64) error {
	return c.write(ctx, KindVenue, "", OpDelete, func(store repositories.Store) error {
		return store.Venues.Delete(ctx, id)
	})
}

// CreateArtist stores a new artist and sets its ID.
func (c *Catalog) CreateArtist(ctx context.Context, a *models.Artist) error {
	return c.write(ctx, KindArtist, a.Name, OpCreate, func(store repositories.Store) error {
		return store.Artists.Create(ctx, a)
	})
}

// UpdateArtist replaces every mutable field of the artist with a.ID.
func (c *Catalog) UpdateArtist(ctx context.Context, a *models.Artist) error {
	return c.write(ctx, KindArtist, a.Name, OpUpdate, func(store repositories.Store) error {
		if _, err := store.Artists.Get(ctx, a.ID); err != nil {
			return err
		}
		return store.Artists.Update(ctx, a)
	})
}

// DeleteArtist removes an artist together with their shows.
func (c *Catalog) DeleteArtist(ctx context.Context, id int64) error {
	return c.write(ctx, KindArtist, "", OpDelete, func(store repositories.Store) error {
		return store.Artists.Delete(ctx, id)
	})
}

// CreateShow resolves the show's artist and venue, then stores it.
//
// A missing artist or venue yields an [EndpointError] and nothing is written.
func (c *Catalog) CreateShow(ctx context.Context, s *models.Show) error {
	return c.write(ctx, KindShow, "", OpCreate, func(store repositories.Store) error {
		if err := resolveEndpoints(ctx, store, s.ArtistID, s.VenueID); err != nil {
			return err
		}
		return store.Shows.Create(ctx, s)
	})
}

func resolveEndpoints(ctx context.Context, store repositories.Store, artistID, venueID int64) error {
	artistFound, err := store.Artists.Exists(ctx, artistID)
	if err != nil {
		return err
	}

	venueFound, err := store.Venues.Exists(ctx, venueID)
	if err != nil {
		return err
	}

	if artistFound && venueFound {
		return nil
	}
	return &EndpointError{VenueMissing: !venueFound, ArtistMissing: !artistFound}
}

// write runs fn in one transaction and classifies its failure.
func (c *Catalog) write(ctx context.Context, kind Kind, name string, op Operation, fn func(repositories.Store) error) error {
	err := c.session.InTx(ctx, fn)
	if err == nil {
		return nil
	}

	var rejected *EndpointError
	if errors.As(err, &rejected) {
		return rejected
	}
	return &PersistenceError{Kind: kind, Name: name, Op: op, Err: err}
}

// Stats counts the stored records.
type Stats struct {
	Venues  int `json:"venues"`
	Artists int `json:"artists"`
	Shows   int `json:"shows"`
}

func (s Stats) String() string {
	return fmt.Sprintf("%d venues, %d artists, %d shows", s.Venues, s.Artists, s.Shows)
}

// Stats returns the number of venues, artists, and shows.
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	var (
		stats Stats
		err   error
	)
	store := c.store()

	if stats.Venues, err = store.Venues.Count(ctx); err != nil {
		return stats, err
	}
	if stats.Artists, err = store.Artists.Count(ctx); err != nil {
		return stats, err
	}
	if stats.Shows, err = store.Shows.Count(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}
