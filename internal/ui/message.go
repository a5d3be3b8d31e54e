package ui

import (
	"github.com/IvanCheng1/Venue-Booking-Site/internal/listing"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
	err  error
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgAreasFetched MsgKind = iota
	MsgArtistsFetched
	MsgShowsFetched
	MsgDetailFetched
	MsgDeleted
)

// areasFetchedMsg is the constructor for [MsgAreasFetched]
func areasFetchedMsg(areas []listing.Area, err error) Msg {
	return Msg{kind: MsgAreasFetched, data: areas, err: err}
}

// artistsFetchedMsg is the constructor for [MsgArtistsFetched]
func artistsFetchedMsg(artists []models.ArtistSummary, err error) Msg {
	return Msg{kind: MsgArtistsFetched, data: artists, err: err}
}

// showsFetchedMsg is the constructor for [MsgShowsFetched]
func showsFetchedMsg(shows []listing.UpcomingShow, err error) Msg {
	return Msg{kind: MsgShowsFetched, data: shows, err: err}
}

// detailFetchedMsg is the constructor for [MsgDetailFetched]. The data is a
// *listing.VenueDetail or *listing.ArtistDetail.
func detailFetchedMsg(detail any, err error) Msg {
	return Msg{kind: MsgDetailFetched, data: detail, err: err}
}

// deletedMsg is the constructor for [MsgDeleted]
func deletedMsg(name string, err error) Msg {
	return Msg{kind: MsgDeleted, data: name, err: err}
}
