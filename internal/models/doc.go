// Package models defines the domain entities of the venue booking site.
//
// The package contains three persistent entities and the value types they share:
//   - [Venue] : a place that hosts shows, grouped on listing pages by city and state
//   - [Artist] : a performer who plays shows
//   - [Show] : a scheduled event joining exactly one venue and one artist at a start time
//   - [ShowDetail] : a show joined with the display fields of both endpoints
//   - [Genres] : a never-nil list of genre tags stored as a JSON array
//   - [Seeking] : the "seeking talent" / "seeking venue" flag
//
// Summaries ([VenueSummary], [ArtistSummary]) are the {id, name} shapes used by
// listing and search pages.
package models
