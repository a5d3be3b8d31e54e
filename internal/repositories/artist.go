package repositories

import (
	"context"
	"fmt"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	"github.com/jmoiron/sqlx"
)

const artistColumns = `id, name, city, state, phone, genres, image_link,
	facebook_link, website, seeking_venue, seeking_description`

// ArtistRepository implements persistence operations for artists
type ArtistRepository struct {
	q Querier
}

// NewArtistRepository creates a new artist repository
func NewArtistRepository(q Querier) *ArtistRepository {
	return &ArtistRepository{q: q}
}

// Create inserts a new artist and sets its ID.
func (r *ArtistRepository) Create(ctx context.Context, a *models.Artist) error {
	if a.Genres == nil {
		a.Genres = models.Genres{}
	}

	query := `INSERT INTO artists (name, city, state, phone, genres, image_link,
		facebook_link, website, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.q.ExecContext(ctx, query,
		a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
		a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return wrap("create artist", err, shared.ErrArtistNotFound)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to get artist id: %v", shared.ErrPersistence, err)
	}
	a.ID = id
	return nil
}

// Get retrieves an artist by ID
func (r *ArtistRepository) Get(ctx context.Context, id int64) (*models.Artist, error) {
	var a models.Artist
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	if err := sqlx.GetContext(ctx, r.q, &a, query, id); err != nil {
		return nil, wrap("get artist", err, shared.ErrArtistNotFound)
	}
	return &a, nil
}

// Exists reports whether an artist with the given ID is stored.
func (r *ArtistRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var found bool
	query := `SELECT EXISTS (SELECT 1 FROM artists WHERE id = ?)`
	if err := sqlx.GetContext(ctx, r.q, &found, query, id); err != nil {
		return false, wrap("check artist", err, shared.ErrArtistNotFound)
	}
	return found, nil
}

// Update replaces every mutable field of an existing artist.
func (r *ArtistRepository) Update(ctx context.Context, a *models.Artist) error {
	if a.Genres == nil {
		a.Genres = models.Genres{}
	}

	query := `UPDATE artists SET name = ?, city = ?, state = ?, phone = ?, genres = ?,
		image_link = ?, facebook_link = ?, website = ?,
		seeking_venue = ?, seeking_description = ?
		WHERE id = ?`

	result, err := r.q.ExecContext(ctx, query,
		a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
		a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription, a.ID,
	)
	if err != nil {
		return wrap("update artist", err, shared.ErrArtistNotFound)
	}
	return affected(result, shared.ErrArtistNotFound)
}

// Delete removes an artist and every show they play.
//
// Both statements must share a transaction; run it through [Session.InTx].
func (r *ArtistRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = ?`, id); err != nil {
		return wrap("delete artist shows", err, shared.ErrArtistNotFound)
	}

	result, err := r.q.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
	if err != nil {
		return wrap("delete artist", err, shared.ErrArtistNotFound)
	}
	return affected(result, shared.ErrArtistNotFound)
}

// List returns every artist ordered by name.
func (r *ArtistRepository) List(ctx context.Context) ([]models.Artist, error) {
	artists := []models.Artist{}
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY name, id`
	if err := sqlx.SelectContext(ctx, r.q, &artists, query); err != nil {
		return nil, wrap("list artists", err, shared.ErrArtistNotFound)
	}
	return artists, nil
}

// Summaries returns the {id, name} of every artist in ascending id order.
func (r *ArtistRepository) Summaries(ctx context.Context) ([]models.ArtistSummary, error) {
	summaries := []models.ArtistSummary{}
	query := `SELECT id, name FROM artists ORDER BY id`
	if err := sqlx.SelectContext(ctx, r.q, &summaries, query); err != nil {
		return nil, wrap("list artist summaries", err, shared.ErrArtistNotFound)
	}
	return summaries, nil
}

// Count returns the number of stored artists
func (r *ArtistRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.q, &n, `SELECT COUNT(*) FROM artists`); err != nil {
		return 0, wrap("count artists", err, shared.ErrArtistNotFound)
	}
	return n, nil
}
