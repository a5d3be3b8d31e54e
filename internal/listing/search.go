package listing

import (
	"strings"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
)

// Named is a row that can be matched by name.
type Named interface {
	models.VenueSummary | models.ArtistSummary
}

// SearchResult is the {count, data} shape of a search page.
type SearchResult[T Named] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

// Search keeps every row whose name contains term, ignoring case.
//
// An empty term matches every row. Rows keep their input order, which the
// repositories fix to ascending id.
func Search[T Named](term string, rows []T) SearchResult[T] {
	needle := strings.ToLower(term)
	data := []T{}
	for _, row := range rows {
		if strings.Contains(strings.ToLower(nameOf(row)), needle) {
			data = append(data, row)
		}
	}
	return SearchResult[T]{Count: len(data), Data: data}
}

func nameOf[T Named](row T) string {
	switch r := any(row).(type) {
	case models.VenueSummary:
		return r.Name
	case models.ArtistSummary:
		return r.Name
	}
	return ""
}
