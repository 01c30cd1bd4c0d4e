// Package analysis computes aggregate statistics over a cleaned movie table.
package analysis

import (
	"slices"

	"github.com/samber/lo"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

// GenreDistribution counts rows per distinct genre, most frequent first.
// Genres with equal counts keep their first-seen order.
func GenreDistribution(t *models.Table) []models.GenreCount {
	if t.Len() == 0 {
		return nil
	}

	counts := lo.CountValuesBy(t.Movies, func(m models.Movie) string { return m.Genre })
	order := lo.Uniq(lo.Map(t.Movies, func(m models.Movie, _ int) string { return m.Genre }))

	dist := lo.Map(order, func(g string, _ int) models.GenreCount {
		return models.GenreCount{Genre: g, Count: counts[g]}
	})
	slices.SortStableFunc(dist, func(a, b models.GenreCount) int {
		return b.Count - a.Count
	})
	return dist
}

// DistinctGenres returns the number of distinct genre labels.
func DistinctGenres(t *models.Table) int {
	if t.Len() == 0 {
		return 0
	}
	return len(lo.UniqBy(t.Movies, func(m models.Movie) string { return m.Genre }))
}
