// Package report writes analysis results and chart images into an Excel workbook.
package report

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the report workbook.
const (
	SheetGenres  = "Genre_Wise_movies"
	SheetRatings = "Ratings_Stats"
	SheetYears   = "Release_year_Movies"
	SheetCharts  = "Charts"
)

// Column headers of the report sheets.
var (
	GenreHeader   = []string{"Genre", "Count"}
	RatingsHeader = []string{"Metric", "Value"}
	YearsHeader   = []string{"Release Year", "Movies"}
)

// Export writes a new workbook at path with the genre distribution, rating
// statistics and per-year counts on separate sheets. An existing file is
// replaced entirely. NaN statistics are written as the text "NaN".
func Export(path string, genres []models.GenreCount, ratings models.RatingStats, years models.YearCounts) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetGenres); err != nil {
		return fmt.Errorf("rename default sheet: %w", err)
	}
	for _, name := range []string{SheetRatings, SheetYears} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
	}

	w, err := newSheetWriter(f)
	if err != nil {
		return err
	}

	genreRows := make([][]interface{}, 0, len(genres))
	for _, g := range genres {
		genreRows = append(genreRows, []interface{}{g.Genre, g.Count})
	}
	if err := w.writeTable(SheetGenres, GenreHeader, genreRows, []float64{24, 10}); err != nil {
		return err
	}

	metrics := ratings.Metrics()
	ratingRows := make([][]interface{}, 0, len(metrics))
	for _, m := range metrics {
		ratingRows = append(ratingRows, []interface{}{m.Name, cellNumber(m.Value)})
	}
	if err := w.writeTable(SheetRatings, RatingsHeader, ratingRows, []float64{18, 12}); err != nil {
		return err
	}
	if len(ratingRows) > 0 && !ratings.Undefined() {
		last := fmt.Sprintf("B%d", len(ratingRows)+1)
		if err := f.SetCellStyle(SheetRatings, "B2", last, w.decimalStyle); err != nil {
			return fmt.Errorf("style %s: %w", SheetRatings, err)
		}
	}

	yearRows := make([][]interface{}, 0, len(years))
	for _, y := range years {
		yearRows = append(yearRows, []interface{}{y.Year, y.Count})
	}
	if err := w.writeTable(SheetYears, YearsHeader, yearRows, []float64{14, 10}); err != nil {
		return err
	}

	f.SetActiveSheet(0)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return models.NewIOError("mkdir", dir, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return models.NewIOError("save", path, err)
	}

	slog.Info("report exported",
		slog.String("path", path),
		slog.Int("genres", len(genres)),
		slog.Int("years", len(years)))
	return nil
}

// cellNumber returns v, or the text "NaN" which Excel cannot store as a number.
func cellNumber(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NaN"
	}
	return v
}

// sheetWriter writes header-and-rows tables with shared styles.
type sheetWriter struct {
	f            *excelize.File
	headerStyle  int
	decimalStyle int
}

func newSheetWriter(f *excelize.File) (*sheetWriter, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	decimal, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("create number style: %w", err)
	}
	return &sheetWriter{f: f, headerStyle: header, decimalStyle: decimal}, nil
}

func (w *sheetWriter) writeTable(sheet string, header []string, rows [][]interface{}, widths []float64) error {
	if err := w.f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := w.f.SetCellStyle(sheet, "A1", lastHeader, w.headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := w.f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}

	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := w.f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set %s column width: %w", sheet, err)
		}
	}

	return w.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
