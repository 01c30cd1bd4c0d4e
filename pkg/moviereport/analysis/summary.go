package analysis

import (
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

// Summarize computes every statistic shown after an analysis run.
func Summarize(t *models.Table) models.Summary {
	years := YearCounts(t)
	return models.Summary{
		TotalMovies:    t.Len(),
		DistinctGenres: DistinctGenres(t),
		Genres:         GenreDistribution(t),
		Ratings:        Ratings(t),
		Years:          years,
		PeakYear:       years.Summary(),
	}
}
