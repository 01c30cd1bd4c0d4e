package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

func TestSort(t *testing.T) {
	table := &models.Table{
		Columns: fourColumns,
		Movies: []models.Movie{
			movie("A", 2020, 5, "Drama"),
			movie("B", 1999, 9, "Drama"),
			movie("C", 2020, 7, "Drama"),
			movie("D", 0, 2, "Drama"),
		},
	}

	tests := []struct {
		key   SortKey
		order SortOrder
		want  []string
	}{
		{SortByYear, Ascending, []string{"D", "B", "A", "C"}},
		{SortByYear, Descending, []string{"A", "C", "B", "D"}},
		{SortByRating, Ascending, []string{"D", "A", "C", "B"}},
		{SortByRating, Descending, []string{"B", "C", "A", "D"}},
	}

	for _, tt := range tests {
		sorted := Sort(table, tt.key, tt.order)
		got := make([]string, 0, len(sorted.Movies))
		for _, m := range sorted.Movies {
			got = append(got, m.Name)
		}
		assert.Equal(t, tt.want, got, "%s %s", tt.key, tt.order)
	}
	assert.Equal(t, "A", table.Movies[0].Name, "input must not be reordered")
}

func TestParseSort(t *testing.T) {
	key, err := ParseSortKey(" Ratings ")
	require.NoError(t, err)
	assert.Equal(t, SortByRating, key)

	key, err = ParseSortKey("release_year")
	require.NoError(t, err)
	assert.Equal(t, SortByYear, key)

	_, err = ParseSortKey("genre")
	assert.Error(t, err)

	order, err := ParseSortOrder("DESC")
	require.NoError(t, err)
	assert.Equal(t, Descending, order)

	order, err = ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, Ascending, order)

	_, err = ParseSortOrder("sideways")
	assert.Error(t, err)
}
