package services

import (
	"fmt"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
)

// Kind names the entity a write targeted, as shown to users.
type Kind string

const (
	KindVenue  Kind = "Venue"
	KindArtist Kind = "Artist"
	KindShow   Kind = "Show"
)

// Operation is the past-tense verb of a write, as shown to users.
type Operation string

const (
	OpCreate Operation = "listed"
	OpUpdate Operation = "updated"
	OpDelete Operation = "deleted"
)

// SuccessMessage is the flash shown after a write commits.
func SuccessMessage(kind Kind, name string, op Operation) string {
	return fmt.Sprintf("%s was successfully %s!", subject(kind, name), op)
}

// EndpointError rejects a show whose artist or venue does not resolve.
type EndpointError struct {
	VenueMissing  bool
	ArtistMissing bool
}

func (e *EndpointError) Error() string {
	switch {
	case e.VenueMissing && e.ArtistMissing:
		return "venue and artist not found"
	case e.VenueMissing:
		return "venue not found"
	default:
		return "artist not found"
	}
}

// Message is the user-facing rejection naming the side(s) that failed to resolve.
func (e *EndpointError) Message() string {
	switch {
	case e.VenueMissing && e.ArtistMissing:
		return "Venue and Artist not found! Check Artist ID and Venue ID."
	case e.VenueMissing:
		return "Venue not found! Check Venue ID on Venue's page."
	default:
		return "Artist not found! Check Artist ID on Artist's page."
	}
}

// Is matches [shared.ErrVenueNotFound] and [shared.ErrArtistNotFound] for the missing sides.
func (e *EndpointError) Is(target error) bool {
	switch target {
	case shared.ErrVenueNotFound:
		return e.VenueMissing
	case shared.ErrArtistNotFound:
		return e.ArtistMissing
	}
	return false
}

// PersistenceError reports a write that failed and was rolled back.
type PersistenceError struct {
	Kind Kind
	Name string
	Op   Operation
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Kind, e.verb(), e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Message is the generic user-facing failure naming the entity and its input name.
func (e *PersistenceError) Message() string {
	return fmt.Sprintf("An error occurred. %s could not be %s.", subject(e.Kind, e.Name), e.Op)
}

func (e *PersistenceError) verb() string {
	switch e.Op {
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return "create"
}

func subject(kind Kind, name string) string {
	if name == "" {
		return string(kind)
	}
	return string(kind) + " " + name
}
