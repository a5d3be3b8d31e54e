package listing

import (
	"testing"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
)

var now = time.Date(2026, 10, 14, 20, 0, 0, 0, time.UTC)

func show(id, venueID, artistID int64, start time.Time) models.ShowDetail {
	return models.ShowDetail{
		ID:              id,
		StartTime:       start,
		VenueID:         venueID,
		VenueName:       "Venue",
		VenueImageLink:  "https://img.example.com/venue.png",
		ArtistID:        artistID,
		ArtistName:      "Artist",
		ArtistImageLink: "https://img.example.com/artist.png",
	}
}

func TestIsUpcoming(t *testing.T) {
	tc := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{name: "boundary instant is past", start: now, want: false},
		{name: "one nanosecond ahead", start: now.Add(time.Nanosecond), want: true},
		{name: "one nanosecond behind", start: now.Add(-time.Nanosecond), want: false},
		{name: "same instant other zone", start: now.In(time.FixedZone("EST", -5*3600)), want: false},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUpcoming(now, tt.start); got != tt.want {
				t.Errorf("IsUpcoming() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatStartTime(t *testing.T) {
	start := time.Date(2026, 5, 21, 21, 30, 0, 123456789, time.UTC)
	if got, want := FormatStartTime(start), "2026-05-21 21:30:00.123456"; got != want {
		t.Errorf("FormatStartTime() = %q, want %q", got, want)
	}
}

func TestPartition(t *testing.T) {
	t.Run("empty input yields empty lists", func(t *testing.T) {
		past, upcoming := Partition(now, nil, ToArtistShow)
		if past == nil || upcoming == nil {
			t.Fatal("Partition() returned nil lists")
		}
		if len(past) != 0 || len(upcoming) != 0 {
			t.Errorf("expected no shows, got %d past and %d upcoming", len(past), len(upcoming))
		}
	})

	t.Run("keeps order on each side", func(t *testing.T) {
		shows := []models.ShowDetail{
			show(1, 10, 1, now.Add(48*time.Hour)),
			show(2, 10, 2, now.Add(-48*time.Hour)),
			show(3, 10, 3, now.Add(24*time.Hour)),
			show(4, 10, 4, now),
		}

		past, upcoming := Partition(now, shows, ToArtistShow)

		if len(past) != 2 || past[0].ArtistID != 2 || past[1].ArtistID != 4 {
			t.Errorf("unexpected past shows: %+v", past)
		}
		if len(upcoming) != 2 || upcoming[0].ArtistID != 1 || upcoming[1].ArtistID != 3 {
			t.Errorf("unexpected upcoming shows: %+v", upcoming)
		}
	})
}

func TestNewVenueDetail(t *testing.T) {
	venue := models.Venue{ID: 10, Name: "The Musical Hop", City: "San Francisco", State: "CA"}

	t.Run("past shows resolve the artist, not the venue", func(t *testing.T) {
		shows := []models.ShowDetail{show(1, 10, 7, now.Add(-time.Hour))}
		shows[0].ArtistName = "Guns N Petals"

		detail := NewVenueDetail(now, venue, shows)

		if detail.PastShowsCount != 1 {
			t.Fatalf("expected one past show, got %d", detail.PastShowsCount)
		}
		got := detail.PastShows[0]
		if got.ArtistID != 7 || got.ArtistName != "Guns N Petals" {
			t.Errorf("past show should carry artist 7, got %+v", got)
		}
		if got.ArtistImageLink != "https://img.example.com/artist.png" {
			t.Errorf("past show should carry the artist image, got %q", got.ArtistImageLink)
		}
	})

	t.Run("counts equal list lengths", func(t *testing.T) {
		var shows []models.ShowDetail
		for i := range 7 {
			offset := time.Duration(i-3) * time.Hour
			shows = append(shows, show(int64(i+1), 10, int64(i+1), now.Add(offset)))
		}

		detail := NewVenueDetail(now, venue, shows)

		if detail.PastShowsCount != len(detail.PastShows) {
			t.Errorf("past count %d != len %d", detail.PastShowsCount, len(detail.PastShows))
		}
		if detail.UpcomingShowsCount != len(detail.UpcomingShows) {
			t.Errorf("upcoming count %d != len %d", detail.UpcomingShowsCount, len(detail.UpcomingShows))
		}
		if detail.PastShowsCount+detail.UpcomingShowsCount != len(shows) {
			t.Errorf("past + upcoming = %d, want %d", detail.PastShowsCount+detail.UpcomingShowsCount, len(shows))
		}
		if detail.PastShowsCount != 4 {
			t.Errorf("expected 4 past shows including the boundary, got %d", detail.PastShowsCount)
		}
	})

	t.Run("keeps venue fields", func(t *testing.T) {
		detail := NewVenueDetail(now, venue, nil)
		if detail.Name != venue.Name || detail.City != venue.City {
			t.Errorf("detail lost venue fields: %+v", detail.Venue)
		}
	})
}

func TestNewArtistDetail(t *testing.T) {
	artist := models.Artist{ID: 4, Name: "Guns N Petals"}
	shows := []models.ShowDetail{
		show(1, 10, 4, now.Add(-time.Hour)),
		show(2, 11, 4, now.Add(time.Hour)),
	}
	shows[1].VenueName = "Park Square Live Music & Coffee"

	detail := NewArtistDetail(now, artist, shows)

	if detail.PastShowsCount != 1 || detail.UpcomingShowsCount != 1 {
		t.Fatalf("expected 1 past and 1 upcoming, got %d and %d", detail.PastShowsCount, detail.UpcomingShowsCount)
	}
	if detail.UpcomingShows[0].VenueID != 11 || detail.UpcomingShows[0].VenueName != "Park Square Live Music & Coffee" {
		t.Errorf("unexpected upcoming venue: %+v", detail.UpcomingShows[0])
	}
	if detail.PastShows[0].VenueImageLink != "https://img.example.com/venue.png" {
		t.Errorf("unexpected venue image: %q", detail.PastShows[0].VenueImageLink)
	}
}

func TestUpcoming(t *testing.T) {
	t.Run("filters strictly after now", func(t *testing.T) {
		shows := []models.ShowDetail{
			show(1, 1, 1, now.Add(-time.Hour)),
			show(2, 1, 2, now),
			show(3, 2, 3, now.Add(time.Hour)),
			show(4, 3, 4, now.Add(2*time.Hour)),
		}

		got := Upcoming(now, shows)

		if len(got) != 2 {
			t.Fatalf("expected 2 upcoming shows, got %d", len(got))
		}
		if got[0].ShowID != 3 || got[1].ShowID != 4 {
			t.Errorf("unexpected order: %+v", got)
		}
		if got[0].VenueID != 2 || got[0].ArtistID != 3 {
			t.Errorf("unexpected projection: %+v", got[0])
		}
		if got[0].StartTime != FormatStartTime(now.Add(time.Hour)) {
			t.Errorf("unexpected start time %q", got[0].StartTime)
		}
	})

	t.Run("empty when everything is past", func(t *testing.T) {
		got := Upcoming(now, []models.ShowDetail{show(1, 1, 1, now)})
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil list, got %v", got)
		}
	})
}
