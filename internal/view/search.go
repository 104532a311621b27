package view

import (
	"strings"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

// FilterAttractions returns the candidates whose name, city, country or type
// contains the query as a case-insensitive substring. An empty or
// whitespace-only query yields an empty result: no query means no results,
// not "show everything". No ranking, no fuzzy matching.
func FilterAttractions(query string, candidates []model.Attraction) []model.Attraction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.Attraction{}
	}

	results := make([]model.Attraction, 0)
	for _, a := range candidates {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Location.City), q) ||
			strings.Contains(strings.ToLower(a.CountryID), q) ||
			strings.Contains(strings.ToLower(a.Type), q) {
			results = append(results, a)
		}
	}
	return results
}
