// Package models defines data structures for movie rating analysis.
package models

// Source column headers recognised in the movie sheet.
const (
	ColMovieName      = "Movie_Name"
	ColReleaseYear    = "Release_Year"
	ColGenre          = "Genre"
	ColRatings        = "Ratings"
	ColReviewer       = "Reviewer"
	ColReviews        = "Reviews"
	ColReview         = "Review"
	ColDirectors      = "Directors"
	ColWriters        = "Writers"
	ColOverview       = "overview"
	ColReviewCategory = "Review_Category"
)

// Unknown is the sentinel written into missing text fields by cleaning.
const Unknown = "Unknown"

// Field identifies a known movie attribute.
type Field uint16

const (
	FieldMovieName Field = 1 << iota
	FieldReleaseYear
	FieldGenre
	FieldRatings
	FieldReviewer
	FieldReview
	FieldDirectors
	FieldWriters
	FieldOverview
	FieldReviewCategory
)

// TrackedFields are the fields filled with sentinel values during cleaning.
var TrackedFields = []Field{
	FieldMovieName,
	FieldReleaseYear,
	FieldGenre,
	FieldRatings,
	FieldReviewer,
	FieldReview,
	FieldDirectors,
	FieldWriters,
}

// RequiredFields must be present as columns for a sheet to load.
var RequiredFields = []Field{FieldMovieName, FieldReleaseYear, FieldGenre, FieldRatings}

// FieldSet is a bit set of fields.
type FieldSet uint16

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool { return s&FieldSet(f) != 0 }

// With returns the set with f added.
func (s FieldSet) With(f Field) FieldSet { return s | FieldSet(f) }

// Without returns the set with f removed.
func (s FieldSet) Without(f Field) FieldSet { return s &^ FieldSet(f) }

// FieldForColumn maps a trimmed source header to a known field.
// Both "Reviews" and "Review" map to FieldReview.
func FieldForColumn(header string) (Field, bool) {
	switch header {
	case ColMovieName:
		return FieldMovieName, true
	case ColReleaseYear:
		return FieldReleaseYear, true
	case ColGenre:
		return FieldGenre, true
	case ColRatings:
		return FieldRatings, true
	case ColReviewer:
		return FieldReviewer, true
	case ColReviews, ColReview:
		return FieldReview, true
	case ColDirectors:
		return FieldDirectors, true
	case ColWriters:
		return FieldWriters, true
	case ColOverview:
		return FieldOverview, true
	case ColReviewCategory:
		return FieldReviewCategory, true
	}
	return 0, false
}

// ColumnName returns the canonical header for a field.
func (f Field) ColumnName() string {
	switch f {
	case FieldMovieName:
		return ColMovieName
	case FieldReleaseYear:
		return ColReleaseYear
	case FieldGenre:
		return ColGenre
	case FieldRatings:
		return ColRatings
	case FieldReviewer:
		return ColReviewer
	case FieldReview:
		return ColReviews
	case FieldDirectors:
		return ColDirectors
	case FieldWriters:
		return ColWriters
	case FieldOverview:
		return ColOverview
	case FieldReviewCategory:
		return ColReviewCategory
	}
	return ""
}

// Movie represents one row of the ratings & reviews sheet.
type Movie struct {
	// Name is the movie title.
	Name string `json:"movie_name"`
	// ReleaseYear is the release year, 0 when unknown.
	ReleaseYear int `json:"release_year"`
	// Genre is the genre label.
	Genre string `json:"genre"`
	// Rating is the numeric rating, 0 when unknown.
	Rating float64 `json:"ratings"`
	// Reviewer is the reviewer name.
	Reviewer string `json:"reviewer"`
	// Review is the review text (source header "Reviews" or "Review").
	Review string `json:"review"`
	// Directors lists the directors.
	Directors string `json:"directors"`
	// Writers lists the writers.
	Writers string `json:"writers"`
	// Overview is the plot overview (optional column).
	Overview string `json:"overview,omitempty"`
	// ReviewCategory is the review category (optional column).
	ReviewCategory string `json:"review_category,omitempty"`
	// Extra maps unrecognised source headers to raw cell text.
	Extra map[string]string `json:"extra,omitempty"`
	// Missing records which known fields were empty in the source.
	Missing FieldSet `json:"-"`
}

// Text returns the string value of a text field.
func (m *Movie) Text(f Field) string {
	switch f {
	case FieldMovieName:
		return m.Name
	case FieldGenre:
		return m.Genre
	case FieldReviewer:
		return m.Reviewer
	case FieldReview:
		return m.Review
	case FieldDirectors:
		return m.Directors
	case FieldWriters:
		return m.Writers
	case FieldOverview:
		return m.Overview
	case FieldReviewCategory:
		return m.ReviewCategory
	}
	return ""
}

// SetText sets a text field. Numeric fields are ignored.
func (m *Movie) SetText(f Field, v string) {
	switch f {
	case FieldMovieName:
		m.Name = v
	case FieldGenre:
		m.Genre = v
	case FieldReviewer:
		m.Reviewer = v
	case FieldReview:
		m.Review = v
	case FieldDirectors:
		m.Directors = v
	case FieldWriters:
		m.Writers = v
	case FieldOverview:
		m.Overview = v
	case FieldReviewCategory:
		m.ReviewCategory = v
	}
}

// IsNumeric reports whether the field holds a number.
func (f Field) IsNumeric() bool {
	return f == FieldReleaseYear || f == FieldRatings
}
