package charts

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

func sampleTable() *models.Table {
	return &models.Table{Movies: []models.Movie{
		{Name: "A", Genre: "Drama", ReleaseYear: 2020, Rating: 5},
		{Name: "B", Genre: "Action", ReleaseYear: 2019, Rating: 8},
		{Name: "C", Genre: "Drama", ReleaseYear: 2020, Rating: 2.5},
		{Name: "D", Genre: "Comedy", ReleaseYear: 0, Rating: 9},
	}}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.DecodeConfig(f)
	assert.NoError(t, err, "%s is not a PNG", path)
}

func TestRender(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "charts")

	paths, err := Render(sampleTable(), dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, GenreFile), paths.Genre)
	assert.Equal(t, filepath.Join(dir, RatingsFile), paths.Ratings)
	assert.Equal(t, filepath.Join(dir, YearBarFile), paths.YearBar)
	for _, f := range paths.Files() {
		assertPNG(t, f.Path)
	}
}

func TestRender_EmptyTable(t *testing.T) {
	paths, err := Render(&models.Table{}, t.TempDir())
	require.NoError(t, err)
	require.Len(t, paths.Files(), 3)
	for _, f := range paths.Files() {
		assertPNG(t, f.Path)
	}
}

func TestRender_Overwrites(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, GenreFile)
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))

	_, err := Render(&models.Table{Movies: []models.Movie{{Genre: "Drama", Rating: 7, ReleaseYear: 2001}}}, dir)
	require.NoError(t, err)
	assertPNG(t, stale)
}

func TestRatingBins(t *testing.T) {
	bins := ratingBins([]float64{0, 1, 5, 9, 10, 10}, RatingBins)
	require.Len(t, bins, RatingBins)

	assert.Equal(t, 0.0, bins[0].Min)
	assert.Equal(t, 10.0, bins[9].Max)
	assert.Equal(t, 1.0, bins[0].Weight)
	assert.Equal(t, 1.0, bins[1].Weight)
	assert.Equal(t, 1.0, bins[5].Weight)
	assert.Equal(t, 3.0, bins[9].Weight, "max lands in the last bin")

	total := 0.0
	for _, b := range bins {
		total += b.Weight
	}
	assert.Equal(t, 6.0, total)
}

func TestRatingBins_SingleValue(t *testing.T) {
	bins := ratingBins([]float64{7, 7}, RatingBins)
	require.Len(t, bins, RatingBins)
	assert.Equal(t, 6.5, bins[0].Min)
	assert.Equal(t, 7.5, bins[9].Max)

	assert.Nil(t, ratingBins(nil, RatingBins))
}

func TestGaussianKDE(t *testing.T) {
	assert.Nil(t, newGaussianKDE([]float64{3}))
	assert.Nil(t, newGaussianKDE([]float64{3, 3, 3}))

	kde := newGaussianKDE([]float64{1, 2, 2.5, 4, 7, 8})
	require.NotNil(t, kde)

	// trapezoidal integral over a wide range is ~1
	const lo, hi, steps = -20.0, 30.0, 5000
	h := (hi - lo) / steps
	area := 0.0
	for i := 0; i < steps; i++ {
		x0 := lo + float64(i)*h
		area += (kde.Density(x0) + kde.Density(x0+h)) * h / 2
	}
	assert.InDelta(t, 1.0, area, 1e-3)
	assert.False(t, math.IsNaN(kde.Density(2)))
}

func TestPieChartPercent(t *testing.T) {
	pc := newPieChart([]models.GenreCount{{Genre: "Drama", Count: 3}, {Genre: "Action", Count: 1}})
	assert.Equal(t, 75.0, pc.Percent(0))
	assert.Equal(t, 25.0, pc.Percent(1))

	assert.Equal(t, 0.0, newPieChart([]models.GenreCount{{Genre: "x"}}).Percent(0))
}
