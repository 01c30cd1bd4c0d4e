package models

import (
	"fmt"
	"math"
)

// GenreCount is the number of movies for one genre.
type GenreCount struct {
	// Genre is the genre label.
	Genre string `json:"genre"`
	// Count is the number of rows with this genre.
	Count int `json:"count"`
}

// RatingStats holds summary statistics of the Ratings column.
// All values are NaN when computed over an empty table.
type RatingStats struct {
	Average float64 `json:"average_rating"`
	Min     float64 `json:"min_rating"`
	Max     float64 `json:"max_rating"`
}

// Metric names written to the report.
const (
	MetricAverageRating = "Average_Rating"
	MetricMinRating     = "Min_Rating"
	MetricMaxRating     = "Max_Rating"
)

// Metric is a named statistic value.
type Metric struct {
	Name  string
	Value float64
}

// Metrics returns the statistics in report order.
func (s RatingStats) Metrics() []Metric {
	return []Metric{
		{Name: MetricAverageRating, Value: s.Average},
		{Name: MetricMinRating, Value: s.Min},
		{Name: MetricMaxRating, Value: s.Max},
	}
}

// Undefined reports whether the stats were computed over no ratings.
func (s RatingStats) Undefined() bool {
	return math.IsNaN(s.Average)
}

// YearCount is the number of movies released in one year.
type YearCount struct {
	// Year is the release year; 0 is the unknown sentinel.
	Year int `json:"year"`
	// Count is the number of rows with this year.
	Count int `json:"count"`
}

// YearCounts is a list of per-year counts ordered ascending by year.
type YearCounts []YearCount

// Peak returns the year with the highest count. Ties go to the earliest year.
// ok is false when there are no counts.
func (yc YearCounts) Peak() (peak YearCount, ok bool) {
	for i, c := range yc {
		if i == 0 || c.Count > peak.Count {
			peak = c
		}
	}
	return peak, len(yc) > 0
}

// Summary formats the peak year as "<year> (<count> movies)", or "N/A".
func (yc YearCounts) Summary() string {
	peak, ok := yc.Peak()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%d (%d movies)", peak.Year, peak.Count)
}

// Summary aggregates everything displayed after an analysis run.
type Summary struct {
	// TotalMovies is the number of cleaned rows.
	TotalMovies int `json:"total_movies"`
	// DistinctGenres is the number of distinct genre labels.
	DistinctGenres int `json:"distinct_genres"`
	// Genres is the genre distribution, most frequent first.
	Genres []GenreCount `json:"genres"`
	// Ratings holds the rating statistics.
	Ratings RatingStats `json:"ratings"`
	// Years holds per-year counts including the 0 bucket.
	Years YearCounts `json:"years"`
	// PeakYear is the formatted peak-year text.
	PeakYear string `json:"peak_year"`
}

// Empty reports whether the summary was computed over zero rows.
func (s Summary) Empty() bool {
	return s.TotalMovies == 0
}
