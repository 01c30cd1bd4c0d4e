package cleaner

import (
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

// ColumnMissing is the number of empty cells in one column.
type ColumnMissing struct {
	Column  string `json:"column"`
	Missing int    `json:"missing"`
}

// Inspection describes the state of a table before cleaning.
type Inspection struct {
	// Rows is the number of rows inspected.
	Rows int `json:"rows"`
	// Missing holds per-column missing counts in column order.
	Missing []ColumnMissing `json:"missing"`
	// Duplicates holds every row that repeats an earlier row exactly.
	Duplicates []models.Movie `json:"duplicates"`
}

// TotalMissing returns the number of empty cells across all columns.
func (in Inspection) TotalMissing() int {
	n := 0
	for _, c := range in.Missing {
		n += c.Missing
	}
	return n
}

// Inspect counts missing values per column and lists duplicate rows without
// modifying t. Rows are compared as loaded, before any filling.
func Inspect(t *models.Table) Inspection {
	columns := t.Bindings()
	in := Inspection{
		Rows:    t.Len(),
		Missing: make([]ColumnMissing, len(columns)),
	}
	for i, col := range columns {
		in.Missing[i].Column = col.Name
	}
	if t.Len() == 0 {
		return in
	}

	seen := make(map[string]struct{}, len(t.Movies))
	for i := range t.Movies {
		m := &t.Movies[i]
		for j, col := range columns {
			if _, missing := m.Cell(col); missing {
				in.Missing[j].Missing++
			}
		}

		key := rowKey(columns, m)
		if _, dup := seen[key]; dup {
			in.Duplicates = append(in.Duplicates, *m)
			continue
		}
		seen[key] = struct{}{}
	}
	return in
}
