package analysis

import (
	"slices"

	"github.com/samber/lo"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

// YearCounts counts rows per release year, ascending by year.
// The 0 (unknown) bucket is included, so the peak-year summary derived
// from this result may name year 0.
func YearCounts(t *models.Table) models.YearCounts {
	if t.Len() == 0 {
		return nil
	}
	return countYears(t.Movies)
}

// ReleasedYearCounts is YearCounts without the 0 (unknown) bucket.
// It feeds the per-year bar chart only; the textual peak year keeps using
// YearCounts, so the two can disagree when 0 is the most frequent year.
func ReleasedYearCounts(t *models.Table) models.YearCounts {
	if t.Len() == 0 {
		return nil
	}
	known := lo.Filter(t.Movies, func(m models.Movie, _ int) bool { return m.ReleaseYear != 0 })
	return countYears(known)
}

func countYears(movies []models.Movie) models.YearCounts {
	if len(movies) == 0 {
		return nil
	}
	counts := lo.CountValuesBy(movies, func(m models.Movie) int { return m.ReleaseYear })
	years := lo.Keys(counts)
	slices.Sort(years)

	return lo.Map(years, func(y int, _ int) models.YearCount {
		return models.YearCount{Year: y, Count: counts[y]}
	})
}
