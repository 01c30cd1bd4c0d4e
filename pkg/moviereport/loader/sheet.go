// Package loader reads the movie ratings sheet from a workbook into a typed table.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet holding movie rating & review data.
const DefaultSheetName = "Movies rating & review data"

// Load reads sheetName from the workbook at path.
// A missing sheet or a sheet without the required columns yields an empty
// table and a nil error. A file that cannot be opened yields an *models.IOError.
func Load(path, sheetName string) (*models.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, models.NewIOError("open", path, models.ErrFileNotFound)
		}
		return nil, models.NewIOError("open", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, models.NewIOError("open", path, err)
	}
	defer f.Close()

	table, err := ReadSheet(f, sheetName)
	if err != nil {
		return nil, models.NewIOError("read", path, err)
	}

	slog.Info("loaded movie sheet",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.Bool("found", table.Found),
		slog.Int("rows", table.Len()))
	return table, nil
}

// ReadSheet reads sheetName from an open workbook.
func ReadSheet(f *excelize.File, sheetName string) (*models.Table, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		slog.Warn("sheet absent, using empty table",
			slog.String("sheet", sheetName),
			slog.Any("error", models.NewDataShapeError(sheetName)))
		return &models.Table{SheetName: sheetName}, nil
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	return parseRows(sheetName, rows), nil
}

// parseRows converts raw sheet rows into a table. The first non-empty row
// of the data region is the header.
func parseRows(sheetName string, rows [][]string) *models.Table {
	table := &models.Table{SheetName: sheetName, Found: true}

	bounds := findDataBounds(rows)
	if bounds.empty() {
		return table
	}
	slog.Debug("movie sheet data region", slog.String("range", bounds.rangeRef()))

	columns, fields := mapHeader(rows[bounds.minRow], bounds.minCol, bounds.maxCol)
	if missing := missingRequired(fields); len(missing) > 0 {
		slog.Warn("movie sheet lacks required columns, using empty table",
			slog.String("sheet", sheetName),
			slog.Any("error", models.NewDataShapeError(sheetName, missing...)))
		return table
	}
	table.Columns = columns
	table.Fields = fields

	for rowIdx := bounds.minRow + 1; rowIdx <= bounds.maxRow; rowIdx++ {
		row := rows[rowIdx]
		if rowIsEmpty(row, bounds.minCol, bounds.maxCol) {
			continue
		}
		table.Movies = append(table.Movies, parseMovie(row, bounds.minCol, columns, fields, rowIdx+1))
	}
	return table
}

// mapHeader returns the trimmed header names for [minCol, maxCol] and the
// known field bound to each column (0 for extra columns). Repeated headers
// get a ".N" suffix and are kept as extra columns.
func mapHeader(header []string, minCol, maxCol int) ([]string, []models.Field) {
	columns := make([]string, 0, maxCol-minCol+1)
	seen := make(map[string]int)

	for colIdx := minCol; colIdx <= maxCol; colIdx++ {
		name := strings.TrimSpace(cellAt(header, colIdx))
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", colIdx-minCol)
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		} else {
			seen[name] = 1
		}
		columns = append(columns, name)
	}
	return columns, models.BindColumns(columns)
}

func missingRequired(fields []models.Field) []string {
	var present models.FieldSet
	for _, f := range fields {
		present = present.With(f)
	}
	var missing []string
	for _, f := range models.RequiredFields {
		if !present.Has(f) {
			missing = append(missing, f.ColumnName())
		}
	}
	return missing
}

func parseMovie(row []string, minCol int, columns []string, fields []models.Field, rowNum int) models.Movie {
	var m models.Movie
	for i, f := range fields {
		raw := cellAt(row, minCol+i)
		if f == 0 {
			if raw != "" {
				if m.Extra == nil {
					m.Extra = make(map[string]string)
				}
				m.Extra[columns[i]] = raw
			}
			continue
		}
		if raw == "" {
			m.Missing = m.Missing.With(f)
			continue
		}

		switch f {
		case models.FieldReleaseYear:
			year, ok := parseYear(raw)
			if !ok {
				slog.Debug("unparseable release year treated as missing",
					slog.Int("row", rowNum), slog.String("value", raw))
				m.Missing = m.Missing.With(f)
				continue
			}
			m.ReleaseYear = year
		case models.FieldRatings:
			rating, ok := parseRating(raw)
			if !ok {
				slog.Debug("unparseable rating treated as missing",
					slog.Int("row", rowNum), slog.String("value", raw))
				m.Missing = m.Missing.With(f)
				continue
			}
			m.Rating = rating
		default:
			m.SetText(f, raw)
		}
	}
	return m
}
