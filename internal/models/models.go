// package models defines the data model for the venue booking site
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Venue is a place that hosts shows.
type Venue struct {
	ID                 int64   `db:"id" json:"id"`
	Name               string  `db:"name" json:"name"`
	City               string  `db:"city" json:"city"`
	State              string  `db:"state" json:"state"`
	Address            string  `db:"address" json:"address"`
	Phone              string  `db:"phone" json:"phone"`
	Genres             Genres  `db:"genres" json:"genres"`
	ImageLink          string  `db:"image_link" json:"image_link"`
	FacebookLink       string  `db:"facebook_link" json:"facebook_link"`
	Website            string  `db:"website" json:"website"`
	SeekingTalent      Seeking `db:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string  `db:"seeking_description" json:"seeking_description"`
}

// Summary reduces the venue to its {id, name} shape.
func (v Venue) Summary() VenueSummary {
	return VenueSummary{ID: v.ID, Name: v.Name}
}

// Artist is a performer who plays shows.
type Artist struct {
	ID                 int64   `db:"id" json:"id"`
	Name               string  `db:"name" json:"name"`
	City               string  `db:"city" json:"city"`
	State              string  `db:"state" json:"state"`
	Phone              string  `db:"phone" json:"phone"`
	Genres             Genres  `db:"genres" json:"genres"`
	ImageLink          string  `db:"image_link" json:"image_link"`
	FacebookLink       string  `db:"facebook_link" json:"facebook_link"`
	Website            string  `db:"website" json:"website"`
	SeekingVenue       Seeking `db:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string  `db:"seeking_description" json:"seeking_description"`
}

// Summary reduces the artist to its {id, name} shape.
func (a Artist) Summary() ArtistSummary {
	return ArtistSummary{ID: a.ID, Name: a.Name}
}

// Show references exactly one venue and one artist.
type Show struct {
	ID        int64     `db:"id" json:"id"`
	ArtistID  int64     `db:"artist_id" json:"artist_id"`
	VenueID   int64     `db:"venue_id" json:"venue_id"`
	StartTime time.Time `db:"start_time" json:"start_time"`
}

// ShowDetail is a show joined with the display fields of its venue and artist.
type ShowDetail struct {
	ID              int64     `db:"id"`
	StartTime       time.Time `db:"start_time"`
	VenueID         int64     `db:"venue_id"`
	VenueName       string    `db:"venue_name"`
	VenueImageLink  string    `db:"venue_image_link"`
	ArtistID        int64     `db:"artist_id"`
	ArtistName      string    `db:"artist_name"`
	ArtistImageLink string    `db:"artist_image_link"`
}

// VenueSummary is the {id, name} shape of a venue.
type VenueSummary struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// ArtistSummary is the {id, name} shape of an artist.
type ArtistSummary struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Genres is a list of genre tags. Order is not significant and duplicates are kept.
//
// It is stored as a JSON array and is never nil once scanned or decoded.
type Genres []string

// Value implements [driver.Valuer].
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return nil, fmt.Errorf("failed to encode genres: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (g *Genres) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*g = Genres{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into Genres", src)
	}

	if len(raw) == 0 {
		*g = Genres{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode genres: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*g = out
	return nil
}

// Has reports whether the genre tag is present.
func (g Genres) Has(genre string) bool {
	for _, v := range g {
		if v == genre {
			return true
		}
	}
	return false
}

// MarshalJSON keeps nil genres encoded as an empty array.
func (g Genres) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(g))
}
