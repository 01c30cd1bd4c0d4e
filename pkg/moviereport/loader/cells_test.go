package loader

import (
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		input string
		year  int
		ok    bool
	}{
		{"2020", 2020, true},
		{"2020.0", 2020, true},
		{"2020.5", 0, false},
		{"unknown", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		year, ok := parseYear(tt.input)
		if year != tt.year || ok != tt.ok {
			t.Errorf("parseYear(%q) = (%d, %v), expected (%d, %v)", tt.input, year, ok, tt.year, tt.ok)
		}
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		input  string
		rating float64
		ok     bool
	}{
		{"8", 8, true},
		{"7.5", 7.5, true},
		{"NaN", 0, false},
		{"great", 0, false},
	}

	for _, tt := range tests {
		rating, ok := parseRating(tt.input)
		if rating != tt.rating || ok != tt.ok {
			t.Errorf("parseRating(%q) = (%v, %v), expected (%v, %v)", tt.input, rating, ok, tt.rating, tt.ok)
		}
	}
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "Movie_Name", "Genre"},
		{"", "A", "Drama", "x"},
	}

	b := findDataBounds(rows)
	if b.minRow != 1 || b.maxRow != 2 || b.minCol != 1 || b.maxCol != 3 {
		t.Errorf("unexpected bounds %+v", b)
	}
	if got := b.rangeRef(); got != "B2:D3" {
		t.Errorf("rangeRef() = %q, expected %q", got, "B2:D3")
	}
	if !findDataBounds(nil).empty() {
		t.Error("expected empty bounds for no rows")
	}
}
