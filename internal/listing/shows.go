package listing

import (
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
)

// StartTimeLayout is the fixed pattern start times are rendered with.
const StartTimeLayout = "2006-01-02 15:04:05.000000"

// FormatStartTime renders t with [StartTimeLayout].
func FormatStartTime(t time.Time) string {
	return t.Format(StartTimeLayout)
}

// IsUpcoming reports whether a show starting at start is still ahead of now.
//
// A show starting exactly at now is past.
func IsUpcoming(now, start time.Time) bool {
	return now.Before(start)
}

// ArtistShow is a show seen from its venue's page.
type ArtistShow struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueShow is a show seen from its artist's page.
type VenueShow struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ToArtistShow projects a show onto its artist. Both past and upcoming shows
// resolve the artist through ArtistID.
func ToArtistShow(s models.ShowDetail) ArtistShow {
	return ArtistShow{
		ArtistID:        s.ArtistID,
		ArtistName:      s.ArtistName,
		ArtistImageLink: s.ArtistImageLink,
		StartTime:       FormatStartTime(s.StartTime),
	}
}

// ToVenueShow projects a show onto its venue.
func ToVenueShow(s models.ShowDetail) VenueShow {
	return VenueShow{
		VenueID:        s.VenueID,
		VenueName:      s.VenueName,
		VenueImageLink: s.VenueImageLink,
		StartTime:      FormatStartTime(s.StartTime),
	}
}

// Partition splits shows into past and upcoming relative to now, projecting
// each one with project. Input order is kept within each side and both
// results are non-nil.
func Partition[T any](now time.Time, shows []models.ShowDetail, project func(models.ShowDetail) T) (past, upcoming []T) {
	past, upcoming = []T{}, []T{}
	for _, s := range shows {
		if IsUpcoming(now, s.StartTime) {
			upcoming = append(upcoming, project(s))
		} else {
			past = append(past, project(s))
		}
	}
	return past, upcoming
}

// VenueDetail is the view-model of a venue page.
type VenueDetail struct {
	models.Venue
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// NewVenueDetail classifies the venue's shows at now.
func NewVenueDetail(now time.Time, venue models.Venue, shows []models.ShowDetail) VenueDetail {
	past, upcoming := Partition(now, shows, ToArtistShow)
	return VenueDetail{
		Venue:              venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

// ArtistDetail is the view-model of an artist page.
type ArtistDetail struct {
	models.Artist
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// NewArtistDetail classifies the artist's shows at now.
func NewArtistDetail(now time.Time, artist models.Artist, shows []models.ShowDetail) ArtistDetail {
	past, upcoming := Partition(now, shows, ToVenueShow)
	return ArtistDetail{
		Artist:             artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

// UpcomingShow is a row of the global shows listing.
type UpcomingShow struct {
	ShowID          int64  `json:"-"`
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// Upcoming keeps the shows that start strictly after now, in input order.
//
// Callers pass shows ordered by start time ascending.
func Upcoming(now time.Time, shows []models.ShowDetail) []UpcomingShow {
	out := []UpcomingShow{}
	for _, s := range shows {
		if !IsUpcoming(now, s.StartTime) {
			continue
		}
		out = append(out, UpcomingShow{
			ShowID:          s.ID,
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       FormatStartTime(s.StartTime),
		})
	}
	return out
}
