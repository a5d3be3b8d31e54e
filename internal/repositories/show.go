package repositories

import (
	"context"
	"fmt"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	"github.com/jmoiron/sqlx"
)

const showDetailSelect = `SELECT s.id, s.start_time,
	v.id AS venue_id, v.name AS venue_name, v.image_link AS venue_image_link,
	a.id AS artist_id, a.name AS artist_name, a.image_link AS artist_image_link
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

const showDetailOrder = ` ORDER BY s.start_time, s.id`

// ShowRepository implements persistence operations for shows
type ShowRepository struct {
	q Querier
}

// NewShowRepository creates a new show repository
func NewShowRepository(q Querier) *ShowRepository {
	return &ShowRepository{q: q}
}

// Create inserts a new show and sets its ID.
//
// Start times are stored in UTC.
func (r *ShowRepository) Create(ctx context.Context, s *models.Show) error {
	query := `INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`

	result, err := r.q.ExecContext(ctx, query, s.ArtistID, s.VenueID, s.StartTime.UTC())
	if err != nil {
		return wrap("create show", err, shared.ErrShowNotFound)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to get show id: %v", shared.ErrPersistence, err)
	}
	s.ID = id
	return nil
}

// Get retrieves a show by ID
func (r *ShowRepository) Get(ctx context.Context, id int64) (*models.Show, error) {
	var s models.Show
	query := `SELECT id, artist_id, venue_id, start_time FROM shows WHERE id = ?`
	if err := sqlx.GetContext(ctx, r.q, &s, query, id); err != nil {
		return nil, wrap("get show", err, shared.ErrShowNotFound)
	}
	return &s, nil
}

// ForVenue returns the shows held at a venue, earliest first.
func (r *ShowRepository) ForVenue(ctx context.Context, venueID int64) ([]models.ShowDetail, error) {
	return r.details(ctx, "list venue shows", showDetailSelect+` WHERE s.venue_id = ?`+showDetailOrder, venueID)
}

// ForArtist returns the shows an artist plays, earliest first.
func (r *ShowRepository) ForArtist(ctx context.Context, artistID int64) ([]models.ShowDetail, error) {
	return r.details(ctx, "list artist shows", showDetailSelect+` WHERE s.artist_id = ?`+showDetailOrder, artistID)
}

// List returns every show, earliest first.
func (r *ShowRepository) List(ctx context.Context) ([]models.ShowDetail, error) {
	return r.details(ctx, "list shows", showDetailSelect+showDetailOrder)
}

// Count returns the number of stored shows
func (r *ShowRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.q, &n, `SELECT COUNT(*) FROM shows`); err != nil {
		return 0, wrap("count shows", err, shared.ErrShowNotFound)
	}
	return n, nil
}

func (r *ShowRepository) details(ctx context.Context, op, query string, args ...any) ([]models.ShowDetail, error) {
	shows := []models.ShowDetail{}
	if err := sqlx.SelectContext(ctx, r.q, &shows, query, args...); err != nil {
		return nil, wrap(op, err, shared.ErrShowNotFound)
	}
	return shows, nil
}
