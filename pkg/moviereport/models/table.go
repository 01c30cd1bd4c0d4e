package models

import (
	"strconv"
)

// Table represents the movie sheet as typed rows.
// The zero value is the empty table: no columns and no rows.
type Table struct {
	// SheetName is the source sheet name.
	SheetName string `json:"sheet_name,omitempty"`
	// Found is false when the source sheet was absent.
	Found bool `json:"found"`
	// Columns contains the trimmed source headers in sheet order.
	Columns []string `json:"columns,omitempty"`
	// Fields holds the field bound to each column, 0 for extra columns.
	// When empty, fields are bound from the header text with BindColumns.
	Fields []Field `json:"-"`
	// Movies contains the data rows in sheet order.
	Movies []Movie `json:"movies,omitempty"`
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Movies)
}

// KnownColumns lists the canonical header of every known field.
var KnownColumns = []string{
	ColMovieName, ColReleaseYear, ColGenre, ColRatings, ColReviewer,
	ColReviews, ColDirectors, ColWriters, ColOverview, ColReviewCategory,
}

// EffectiveColumns returns the source headers, or KnownColumns for a table
// built in memory without a header.
func (t *Table) EffectiveColumns() []string {
	if t == nil || len(t.Columns) == 0 {
		return KnownColumns
	}
	return t.Columns
}

// Column is a source header with the field it is bound to.
type Column struct {
	Name  string
	Field Field // 0 for an extra column
}

// BindColumns binds each header to its known field. Only the first header
// of a field is bound; later headers mapping to the same field, such as
// "Review" after "Reviews", are extra columns.
func BindColumns(columns []string) []Field {
	fields := make([]Field, len(columns))
	var assigned FieldSet
	for i, col := range columns {
		f, ok := FieldForColumn(col)
		if !ok || assigned.Has(f) {
			continue
		}
		assigned = assigned.With(f)
		fields[i] = f
	}
	return fields
}

// Bindings returns every column with its bound field, in column order.
func (t *Table) Bindings() []Column {
	columns := t.EffectiveColumns()
	var fields []Field
	if t != nil && len(t.Columns) > 0 && len(t.Fields) == len(t.Columns) {
		fields = t.Fields
	} else {
		fields = BindColumns(columns)
	}
	out := make([]Column, len(columns))
	for i, col := range columns {
		out[i] = Column{Name: col, Field: fields[i]}
	}
	return out
}

// HasField reports whether a column of the table is bound to f.
func (t *Table) HasField(f Field) bool {
	for _, c := range t.Bindings() {
		if c.Field == f {
			return true
		}
	}
	return false
}

// WithMovies returns a copy of the table header with the given rows.
func (t *Table) WithMovies(movies []Movie) *Table {
	out := &Table{Movies: movies}
	if t != nil {
		out.SheetName = t.SheetName
		out.Found = t.Found
		out.Columns = append([]string(nil), t.Columns...)
		out.Fields = append([]Field(nil), t.Fields...)
	}
	return out
}

// Cell returns the display text of column c for row m.
// missing is true when the source cell was empty.
func (m *Movie) Cell(c Column) (text string, missing bool) {
	if c.Field == 0 {
		v, ok := m.Extra[c.Name]
		return v, !ok
	}
	return m.FieldValue(c.Field)
}

// FieldValue returns the display text of a known field.
func (m *Movie) FieldValue(f Field) (text string, missing bool) {
	if m.Missing.Has(f) {
		return "", true
	}
	switch f {
	case FieldReleaseYear:
		return strconv.Itoa(m.ReleaseYear), false
	case FieldRatings:
		return strconv.FormatFloat(m.Rating, 'f', -1, 64), false
	}
	return m.Text(f), false
}
