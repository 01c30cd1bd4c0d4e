package analysis

import (
	"math"

	"github.com/samber/lo"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Ratings returns the mean, minimum and maximum of the Ratings column.
// Each value is NaN when the table is empty.
func Ratings(t *models.Table) models.RatingStats {
	values := RatingValues(t)
	if len(values) == 0 {
		nan := math.NaN()
		return models.RatingStats{Average: nan, Min: nan, Max: nan}
	}
	return models.RatingStats{
		Average: stat.Mean(values, nil),
		Min:     floats.Min(values),
		Max:     floats.Max(values),
	}
}

// RatingValues returns the Ratings column as a slice.
func RatingValues(t *models.Table) []float64 {
	if t.Len() == 0 {
		return nil
	}
	return lo.Map(t.Movies, func(m models.Movie, _ int) float64 { return m.Rating })
}
