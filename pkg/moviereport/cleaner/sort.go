package cleaner

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

// SortKey selects the column used by Sort.
type SortKey string

const (
	SortByYear   SortKey = "year"
	SortByRating SortKey = "ratings"
)

// SortOrder is the direction used by Sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortKey parses "year" or "ratings" (case-insensitive).
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByYear, "release_year":
		return SortByYear, nil
	case SortByRating, "rating":
		return SortByRating, nil
	}
	return "", fmt.Errorf("invalid sort key: %s (must be year or ratings)", s)
}

// ParseSortOrder parses "asc" or "desc" (case-insensitive).
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case Ascending, "":
		return Ascending, nil
	case Descending:
		return Descending, nil
	}
	return "", fmt.Errorf("invalid sort order: %s (must be asc or desc)", s)
}

// Sort returns a copy of t stably sorted by key in the given order.
func Sort(t *models.Table, key SortKey, order SortOrder) *models.Table {
	movies := slices.Clone(t.Movies)
	if len(movies) == 0 {
		return t.WithMovies(nil)
	}

	slices.SortStableFunc(movies, func(a, b models.Movie) int {
		var c int
		switch key {
		case SortByRating:
			c = compareFloat(a.Rating, b.Rating)
		default:
			c = a.ReleaseYear - b.ReleaseYear
		}
		if order == Descending {
			return -c
		}
		return c
	})
	return t.WithMovies(movies)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
