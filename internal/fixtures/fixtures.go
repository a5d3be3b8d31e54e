// Package fixtures builds random but valid venues, artists, and show times
// with gofakeit. The seed command and the test suites share it.
package fixtures

import (
	"fmt"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/brianvoe/gofakeit/v7"
)

// Faker builds random but valid model values.
type Faker struct {
	f *gofakeit.Faker
}

// NewFaker returns a deterministic faker for the given seed.
func NewFaker(seed uint64) *Faker {
	return &Faker{f: gofakeit.New(seed)}
}

// Venue returns an unsaved venue with every field populated.
func (f *Faker) Venue() models.Venue {
	return models.Venue{
		Name:               f.f.Company(),
		City:               f.f.City(),
		State:              f.f.RandomString(models.States),
		Address:            f.f.Street(),
		Phone:              f.Phone(),
		Genres:             f.Genres(),
		ImageLink:          f.f.URL(),
		FacebookLink:       "https://www.facebook.com/" + f.f.LetterN(12),
		Website:            f.f.URL(),
		SeekingTalent:      f.seeking(),
		SeekingDescription: f.f.Sentence(8),
	}
}

// Artist returns an unsaved artist with every field populated.
func (f *Faker) Artist() models.Artist {
	return models.Artist{
		Name:               f.f.Name(),
		City:               f.f.City(),
		State:              f.f.RandomString(models.States),
		Phone:              f.Phone(),
		Genres:             f.Genres(),
		ImageLink:          f.f.URL(),
		FacebookLink:       "https://www.facebook.com/" + f.f.LetterN(12),
		Website:            f.f.URL(),
		SeekingVenue:       f.seeking(),
		SeekingDescription: f.f.Sentence(8),
	}
}

// StartTime returns a whole-second instant within window of now, on either side.
func (f *Faker) StartTime(now time.Time, window time.Duration) time.Time {
	return f.f.DateRange(now.Add(-window), now.Add(window)).Truncate(time.Second)
}

// Genres returns one to three genres from [models.GenreChoices].
func (f *Faker) Genres() models.Genres {
	n := f.f.Number(1, 3)
	genres := make(models.Genres, 0, n)
	for range n {
		genres = append(genres, f.f.RandomString(models.GenreChoices))
	}
	return genres
}

// Phone returns a number in the xxx-xxx-xxxx shape.
func (f *Faker) Phone() string {
	return fmt.Sprintf("%03d-%03d-%04d", f.f.Number(200, 999), f.f.Number(200, 999), f.f.Number(0, 9999))
}

func (f *Faker) seeking() models.Seeking {
	if f.f.Bool() {
		return models.IsSeeking
	}
	return models.NotSeeking
}

// Pick returns an index in [0, n).
func (f *Faker) Pick(n int) int {
	return f.f.Number(0, n-1)
}
