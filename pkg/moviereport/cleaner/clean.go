// Package cleaner fills missing movie fields and removes duplicate rows.
package cleaner

import (
	"log/slog"
	"maps"
	"strings"

	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

// Clean returns a copy of t with missing tracked fields filled and exact
// duplicate rows removed. Text fields become models.Unknown, Release_Year and
// Ratings become 0. Only columns the table carries are filled. The first
// occurrence of each duplicate is kept and row order is preserved.
// Clean is idempotent.
func Clean(t *models.Table) *models.Table {
	if t.Len() == 0 {
		return t.WithMovies(nil)
	}

	var fill models.FieldSet
	for _, f := range models.TrackedFields {
		if t.HasField(f) {
			fill = fill.With(f)
		}
	}

	columns := t.Bindings()
	seen := make(map[string]struct{}, len(t.Movies))
	movies := make([]models.Movie, 0, len(t.Movies))
	for _, m := range t.Movies {
		m = fillMissing(m, fill)
		key := rowKey(columns, &m)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		movies = append(movies, m)
	}

	slog.Debug("cleaned movie table",
		slog.Int("rows_in", len(t.Movies)),
		slog.Int("rows_out", len(movies)),
		slog.Int("duplicates_removed", len(t.Movies)-len(movies)))
	return t.WithMovies(movies)
}

func fillMissing(m models.Movie, fill models.FieldSet) models.Movie {
	m.Extra = maps.Clone(m.Extra)
	for _, f := range models.TrackedFields {
		if !fill.Has(f) || !m.Missing.Has(f) {
			continue
		}
		switch f {
		case models.FieldReleaseYear:
			m.ReleaseYear = 0
		case models.FieldRatings:
			m.Rating = 0
		default:
			m.SetText(f, models.Unknown)
		}
		m.Missing = m.Missing.Without(f)
	}
	return m
}

// rowKey encodes every column of m so equal keys mean equal rows.
// Missing cells compare equal to each other and unequal to any value.
func rowKey(columns []models.Column, m *models.Movie) string {
	var b strings.Builder
	for _, col := range columns {
		v, missing := m.Cell(col)
		if missing {
			b.WriteString("\x00")
		} else {
			b.WriteString("\x01")
			b.WriteString(v)
		}
		b.WriteString("\x1f")
	}
	return b.String()
}
