package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

func TestInspect(t *testing.T) {
	table := &models.Table{
		Columns: fourColumns,
		Movies: []models.Movie{
			movie("A", 2020, 5, "Drama"),
			{Name: "B", Missing: models.FieldSet(0).With(models.FieldReleaseYear).With(models.FieldGenre)},
			movie("A", 2020, 5, "Drama"),
			{Name: "B", Missing: models.FieldSet(0).With(models.FieldReleaseYear).With(models.FieldGenre)},
			{Name: "B", Genre: "Unknown"},
		},
	}

	in := Inspect(table)
	assert.Equal(t, 5, in.Rows)
	assert.Equal(t, []ColumnMissing{
		{Column: models.ColMovieName, Missing: 0},
		{Column: models.ColReleaseYear, Missing: 2},
		{Column: models.ColRatings, Missing: 0},
		{Column: models.ColGenre, Missing: 2},
	}, in.Missing)
	assert.Equal(t, 4, in.TotalMissing())

	require.Len(t, in.Duplicates, 2)
	assert.Equal(t, "A", in.Duplicates[0].Name)
	assert.Equal(t, "B", in.Duplicates[1].Name)
}

func TestInspect_Empty(t *testing.T) {
	in := Inspect(&models.Table{})
	assert.Zero(t, in.Rows)
	assert.Empty(t, in.Duplicates)
	assert.Len(t, in.Missing, len(models.KnownColumns))
}

func TestInspect_ReviewAliasColumn(t *testing.T) {
	in := Inspect(reviewAliasTable())

	require.Len(t, in.Missing, 6)
	assert.Equal(t, ColumnMissing{Column: models.ColReviews, Missing: 0}, in.Missing[4])
	assert.Equal(t, ColumnMissing{Column: models.ColReview, Missing: 1}, in.Missing[5])
	assert.Equal(t, 1, in.TotalMissing())
	assert.Empty(t, in.Duplicates)
}
