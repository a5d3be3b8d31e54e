package fixtures

import (
	"net/url"
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
)

func TestFaker(t *testing.T) {
	t.Run("same seed same values", func(t *testing.T) {
		a, b := NewFaker(11).Venue(), NewFaker(11).Venue()
		if a.Name != b.Name || a.City != b.City || a.Phone != b.Phone {
			t.Errorf("expected identical venues, got %+v and %+v", a, b)
		}
	})

	t.Run("Venue", func(t *testing.T) {
		f := NewFaker(1)
		for range 20 {
			v := f.Venue()
			if v.Name == "" || v.City == "" || v.Address == "" {
				t.Fatalf("expected required fields, got %+v", v)
			}
			if !slices.Contains(models.States, v.State) {
				t.Errorf("unexpected state %q", v.State)
			}
			if _, err := url.ParseRequestURI(v.Website); err != nil {
				t.Errorf("expected a URL website, got %q", v.Website)
			}
		}
	})

	t.Run("Artist", func(t *testing.T) {
		a := NewFaker(2).Artist()
		if a.Name == "" || a.City == "" {
			t.Fatalf("expected required fields, got %+v", a)
		}
		if a.ID != 0 {
			t.Errorf("expected an unsaved artist, got id %d", a.ID)
		}
	})

	t.Run("Genres", func(t *testing.T) {
		f := NewFaker(3)
		for range 20 {
			genres := f.Genres()
			if len(genres) < 1 || len(genres) > 3 {
				t.Fatalf("expected 1 to 3 genres, got %d", len(genres))
			}
			for _, g := range genres {
				if !slices.Contains(models.GenreChoices, g) {
					t.Errorf("unexpected genre %q", g)
				}
			}
		}
	})

	t.Run("Phone", func(t *testing.T) {
		shape := regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
		f := NewFaker(4)
		for range 20 {
			if p := f.Phone(); !shape.MatchString(p) {
				t.Errorf("unexpected phone %q", p)
			}
		}
	})

	t.Run("StartTime", func(t *testing.T) {
		now := time.Date(2035, 4, 1, 12, 0, 0, 0, time.UTC)
		window := 48 * time.Hour
		f := NewFaker(5)
		for range 50 {
			st := f.StartTime(now, window)
			if st.Before(now.Add(-window)) || st.After(now.Add(window)) {
				t.Fatalf("start %v outside window", st)
			}
			if st.Nanosecond() != 0 {
				t.Errorf("expected whole seconds, got %v", st)
			}
		}
	})

	t.Run("Pick", func(t *testing.T) {
		f := NewFaker(6)
		for range 50 {
			if i := f.Pick(3); i < 0 || i >= 3 {
				t.Fatalf("index %d out of range", i)
			}
		}
		if f.Pick(1) != 0 {
			t.Error("expected the only index")
		}
	})
}
