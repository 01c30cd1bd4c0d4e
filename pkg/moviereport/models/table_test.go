package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindColumns(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		expected []Field
	}{
		{"known and extra", []string{ColMovieName, "Budget", ColRatings}, []Field{FieldMovieName, 0, FieldRatings}},
		{"review aliases", []string{ColReviews, ColReview}, []Field{FieldReview, 0}},
		{"review alias first", []string{ColReview, ColReviews}, []Field{FieldReview, 0}},
		{"empty", nil, []Field{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BindColumns(tt.columns))
		})
	}
}

func TestMovieCell_ExtraAliasColumn(t *testing.T) {
	table := &Table{Columns: []string{ColReviews, ColReview}}
	m := Movie{Review: "x"}

	cols := table.Bindings()
	v, missing := m.Cell(cols[0])
	assert.Equal(t, "x", v)
	assert.False(t, missing)

	_, missing = m.Cell(cols[1])
	assert.True(t, missing, "empty extra column must not fall back to the bound field")
}

func TestBindings_StoredFieldsWin(t *testing.T) {
	table := &Table{
		Columns: []string{ColGenre, "Notes"},
		Fields:  []Field{FieldGenre, 0},
	}
	assert.Equal(t, []Column{{Name: ColGenre, Field: FieldGenre}, {Name: "Notes"}}, table.Bindings())
	assert.False(t, table.HasField(FieldRatings))

	var empty *Table
	assert.Len(t, empty.Bindings(), len(KnownColumns))
}
