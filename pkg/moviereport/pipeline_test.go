package moviereport

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/report"
	"github.com/xuri/excelize/v2"
)

func writeSource(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "movie_data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func sampleSource(t *testing.T) string {
	return writeSource(t, DefaultSheetName, [][]interface{}{
		{"Movie_Name", "Release_Year", "Genre", "Ratings", "Reviewer", "Reviews", "Directors", "Writers"},
		{"Animal", 2023, "Action", 8, "Ravi", "Intense", "Sandeep", "Sandeep"},
		{"Animal", 2023, "Action", 8, "Ravi", "Intense", "Sandeep", "Sandeep"},
		{"Jawan", 2023, "Action", 7, nil, "Loud", "Atlee", "Atlee"},
		{"Dunki", 2023, "Comedy", 6, "Asha", "Warm", "Rajkumar", "Abhijat"},
		{"Pathaan", 2022, "Action", 7.5, "Ravi", "Fun", "Siddharth", "Shridhar"},
		{"Mystery", nil, nil, nil, nil, nil, nil, nil},
	})
}

func TestLoadDataset(t *testing.T) {
	ds, err := LoadDataset(sampleSource(t), DefaultSheetName)
	require.NoError(t, err)

	assert.Equal(t, 6, ds.Raw.Len())
	assert.Equal(t, 5, ds.Clean.Len())

	mystery, ok := FindMovie(ds.Clean, "mystery")
	require.True(t, ok)
	assert.Equal(t, 0, mystery.ReleaseYear)
	assert.Equal(t, models.Unknown, mystery.Genre)
	assert.Equal(t, models.Unknown, mystery.Writers)
}

func TestLoadDataset_FileNotFound(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultSheetName)
	require.Error(t, err)

	var ioErr *IOError
	assert.True(t, errors.As(err, &ioErr))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestRun_Full(t *testing.T) {
	ds, err := LoadDataset(sampleSource(t), DefaultSheetName)
	require.NoError(t, err)

	dir := t.TempDir()
	opts := DefaultOptions()
	opts.ReportPath = filepath.Join(dir, "report.xlsx")
	opts.ChartsDir = filepath.Join(dir, "charts")

	res, err := Run(ds, opts)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Summary.TotalMovies)
	assert.Equal(t, 3, res.Summary.DistinctGenres)
	assert.Equal(t, "2023 (3 movies)", res.Summary.PeakYear)
	assert.InDelta(t, 5.7, res.Summary.Ratings.Average, 1e-9)
	assert.Equal(t, opts.ReportPath, res.ReportPath)
	assert.Len(t, res.Charts.Files(), 3)

	f, err := excelize.OpenFile(opts.ReportPath)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{report.SheetGenres, report.SheetRatings, report.SheetYears, report.SheetCharts}, f.GetSheetList())

	rows, err := f.GetRows(report.SheetYears)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Release Year", "Movies"}, {"0", "1"}, {"2022", "1"}, {"2023", "3"}}, rows)
}

func TestRun_EmptySheet(t *testing.T) {
	source := writeSource(t, "Something else", [][]interface{}{{"x"}})
	ds, err := LoadDataset(source, DefaultSheetName)
	require.NoError(t, err)
	assert.False(t, ds.Raw.Found)

	dir := t.TempDir()
	opts := DefaultOptions()
	opts.ReportPath = filepath.Join(dir, "report.xlsx")
	opts.ChartsDir = filepath.Join(dir, "charts")

	res, err := Run(ds, opts)
	require.NoError(t, err)
	assert.True(t, res.Summary.Empty())
	assert.True(t, math.IsNaN(res.Summary.Ratings.Average))
	assert.Equal(t, "N/A", res.Summary.PeakYear)
	assert.FileExists(t, opts.ReportPath)
}

func TestRun_StatsModeWritesNothing(t *testing.T) {
	ds, err := LoadDataset(sampleSource(t), DefaultSheetName)
	require.NoError(t, err)

	dir := t.TempDir()
	opts := Options{Mode: ModeStats, ReportPath: filepath.Join(dir, "r.xlsx"), ChartsDir: filepath.Join(dir, "c")}
	res, err := Run(ds, opts)
	require.NoError(t, err)

	assert.Empty(t, res.ReportPath)
	assert.Empty(t, res.Charts.Files())
	assert.NoFileExists(t, opts.ReportPath)
	assert.NoDirExists(t, opts.ChartsDir)
}

func TestFindMovie(t *testing.T) {
	table := &models.Table{Movies: []models.Movie{
		{Name: "Jawan"},
		{Name: "Animal", Genre: "Action"},
		{Name: "animal", Genre: "Drama"},
	}}

	tests := []struct {
		query string
		found bool
		genre string
	}{
		{"  animal ", true, "Action"},
		{"ANIMAL", true, "Action"},
		{"Anim", false, ""},
		{"   ", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		m, ok := FindMovie(table, tt.query)
		assert.Equal(t, tt.found, ok, "query %q", tt.query)
		assert.Equal(t, tt.genre, m.Genre, "query %q", tt.query)
	}

	_, ok := FindMovie(&models.Table{}, "Animal")
	assert.False(t, ok)
}

func TestOptions(t *testing.T) {
	no := false
	tests := []struct {
		opts                   Options
		export, render, embed bool
	}{
		{Options{Mode: ModeStats}, false, false, false},
		{Options{Mode: ModeReport}, true, false, false},
		{Options{Mode: ModeFull}, true, true, true},
		{Options{Mode: ModeFull, EmbedCharts: &no}, true, true, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.export, tt.opts.ShouldExport(), "%+v", tt.opts)
		assert.Equal(t, tt.render, tt.opts.ShouldRenderCharts(), "%+v", tt.opts)
		assert.Equal(t, tt.embed, tt.opts.ShouldEmbedCharts(), "%+v", tt.opts)
	}

	_, err := ParseMode("verbose")
	assert.Error(t, err)
	m, err := ParseMode("report")
	require.NoError(t, err)
	assert.Equal(t, ModeReport, m)
}
