package repositories

import (
	"context"
	"fmt"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	"github.com/jmoiron/sqlx"
)

const venueColumns = `id, name, city, state, address, phone, genres, image_link,
	facebook_link, website, seeking_talent, seeking_description`

// VenueRepository implements persistence operations for venues
type VenueRepository struct {
	q Querier
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(q Querier) *VenueRepository {
	return &VenueRepository{q: q}
}

// Create inserts a new venue and sets its ID.
func (r *VenueRepository) Create(ctx context.Context, v *models.Venue) error {
	if v.Genres == nil {
		v.Genres = models.Genres{}
	}

	query := `INSERT INTO venues (name, city, state, address, phone, genres, image_link,
		facebook_link, website, seeking_talent, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.q.ExecContext(ctx, query,
		v.Name, v.City, v.State, v.Address, v.Phone, v.Genres, v.ImageLink,
		v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return wrap("create venue", err, shared.ErrVenueNotFound)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to get venue id: %v", shared.ErrPersistence, err)
	}
	v.ID = id
	return nil
}

// Get retrieves a venue by ID
func (r *VenueRepository) Get(ctx context.Context, id int64) (*models.Venue, error) {
	var v models.Venue
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	if err := sqlx.GetContext(ctx, r.q, &v, query, id); err != nil {
		return nil, wrap("get venue", err, shared.ErrVenueNotFound)
	}
	return &v, nil
}

// Exists reports whether a venue with the given ID is stored.
func (r *VenueRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var found bool
	query := `SELECT EXISTS (SELECT 1 FROM venues WHERE id = ?)`
	if err := sqlx.GetContext(ctx, r.q, &found, query, id); err != nil {
		return false, wrap("check venue", err, shared.ErrVenueNotFound)
	}
	return found, nil
}

// Update replaces every mutable field of an existing venue.
func (r *VenueRepository) Update(ctx context.Context, v *models.Venue) error {
	if v.Genres == nil {
		v.Genres = models.Genres{}
	}

	query := `UPDATE venues SET name = ?, city = ?, state = ?, address = ?, phone = ?,
		genres = ?, image_link = ?, facebook_link = ?, website = ?,
		seeking_talent = ?, seeking_description = ?
		WHERE id = ?`

	result, err := r.q.ExecContext(ctx, query,
		v.Name, v.City, v.State, v.Address, v.Phone, v.Genres, v.ImageLink,
		v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription, v.ID,
	)
	if err != nil {
		return wrap("update venue", err, shared.ErrVenueNotFound)
	}
	return affected(result, shared.ErrVenueNotFound)
}

// Delete removes a venue and every show held there.
//
// Both statements must share a transaction; run it through [Session.InTx].
func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return wrap("delete venue shows", err, shared.ErrVenueNotFound)
	}

	result, err := r.q.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if err != nil {
		return wrap("delete venue", err, shared.ErrVenueNotFound)
	}
	return affected(result, shared.ErrVenueNotFound)
}

// List returns every venue ordered by state, city, then name.
func (r *VenueRepository) List(ctx context.Context) ([]models.Venue, error) {
	venues := []models.Venue{}
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY state, city, name, id`
	if err := sqlx.SelectContext(ctx, r.q, &venues, query); err != nil {
		return nil, wrap("list venues", err, shared.ErrVenueNotFound)
	}
	return venues, nil
}

// Summaries returns the {id, name} of every venue in ascending id order.
func (r *VenueRepository) Summaries(ctx context.Context) ([]models.VenueSummary, error) {
	summaries := []models.VenueSummary{}
	query := `SELECT id, name FROM venues ORDER BY id`
	if err := sqlx.SelectContext(ctx, r.q, &summaries, query); err != nil {
		return nil, wrap("list venue summaries", err, shared.ErrVenueNotFound)
	}
	return summaries, nil
}

// Count returns the number of stored venues
func (r *VenueRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.q, &n, `SELECT COUNT(*) FROM venues`); err != nil {
		return 0, wrap("count venues", err, shared.ErrVenueNotFound)
	}
	return n, nil
}
