package ui

import (
	"fmt"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/listing"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/charmbracelet/bubbles/list"
)

var (
	_ list.Item = menuItem{}
	_ list.Item = venueItem{}
	_ list.Item = artistItem{}
	_ list.Item = showItem{}
)

// menuItem is one section of the start menu.
type menuItem struct {
	view  ViewState
	title string
	desc  string
}

func (i menuItem) FilterValue() string { return i.title }
func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }

// venueItem wraps [models.VenueSummary] with its area to implement [list.Item].
type venueItem struct {
	venue models.VenueSummary
	city  string
	state string
}

func (i venueItem) FilterValue() string { return i.venue.Name }
func (i venueItem) Title() string       { return i.venue.Name }
func (i venueItem) Description() string { return fmt.Sprintf("%s, %s", i.city, i.state) }

// artistItem wraps [models.ArtistSummary] to implement [list.Item].
type artistItem struct {
	artist models.ArtistSummary
}

func (i artistItem) FilterValue() string { return i.artist.Name }
func (i artistItem) Title() string       { return i.artist.Name }
func (i artistItem) Description() string { return fmt.Sprintf("artist #%d", i.artist.ID) }

// showItem wraps [listing.UpcomingShow] to implement [list.Item].
type showItem struct {
	show listing.UpcomingShow
}

func (i showItem) FilterValue() string { return i.show.ArtistName + " " + i.show.VenueName }
func (i showItem) Title() string       { return i.show.ArtistName }
func (i showItem) Description() string {
	return fmt.Sprintf("%s • %s", i.show.VenueName, i.show.StartTime)
}

func venueItems(areas []listing.Area) []list.Item {
	items := []list.Item{}
	for _, area := range areas {
		for _, v := range area.Venues {
			items = append(items, venueItem{venue: v, city: area.City, state: area.State})
		}
	}
	return items
}

func artistItems(artists []models.ArtistSummary) []list.Item {
	items := make([]list.Item, len(artists))
	for i, a := range artists {
		items[i] = artistItem{artist: a}
	}
	return items
}

func showItems(shows []listing.UpcomingShow) []list.Item {
	items := make([]list.Item, len(shows))
	for i, s := range shows {
		items[i] = showItem{show: s}
	}
	return items
}
