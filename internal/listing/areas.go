package listing

import "github.com/IvanCheng1/Venue-Booking-Site/internal/models"

// Area is the group of venues sharing one exact (city, state) pair.
type Area struct {
	City   string                `json:"city"`
	State  string                `json:"state"`
	Venues []models.VenueSummary `json:"venues"`
}

type areaKey struct{ city, state string }

// GroupByArea groups venues by (city, state).
//
// Groups appear in the order the input first introduces each pair, and venues
// keep their relative input order. Keys compare by exact string equality.
// Callers pass venues ordered by (state, city, name).
func GroupByArea(venues []models.Venue) []Area {
	areas := []Area{}
	index := make(map[areaKey]int)

	for _, v := range venues {
		k := areaKey{city: v.City, state: v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []models.VenueSummary{}})
		}
		areas[i].Venues = append(areas[i].Venues, v.Summary())
	}

	return areas
}
