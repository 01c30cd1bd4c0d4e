// Package charts renders the movie statistics as PNG images with gonum/plot.
package charts

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultDir is the default output directory for chart images.
const DefaultDir = "charts"

// Chart image file names inside the output directory.
const (
	GenreFile   = "genre_pie.png"
	RatingsFile = "ratings_hist.png"
	YearBarFile = "Release_year_movies_bar.png"
)

// gridBackground is the axes background behind white grid lines.
var gridBackground = color.RGBA{R: 234, G: 234, B: 242, A: 255}

type chartSpec struct {
	kind          models.ChartKind
	path          string
	build         func(*models.Table) (*plot.Plot, error)
	width, height vg.Length
}

// Render writes the genre pie chart, ratings histogram and per-year bar
// chart for t into dir, creating dir if needed and overwriting existing
// images. An empty table produces charts with no data.
func Render(t *models.Table, dir string) (models.ChartPaths, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return models.ChartPaths{}, models.NewIOError("mkdir", dir, err)
	}

	paths := models.ChartPaths{
		Genre:   filepath.Join(dir, GenreFile),
		Ratings: filepath.Join(dir, RatingsFile),
		YearBar: filepath.Join(dir, YearBarFile),
	}
	specs := []chartSpec{
		{kind: models.ChartGenre, path: paths.Genre, build: genrePie, width: 6 * vg.Inch, height: 6 * vg.Inch},
		{kind: models.ChartRatings, path: paths.Ratings, build: ratingsHistogram, width: 8 * vg.Inch, height: 5 * vg.Inch},
		{kind: models.ChartYearBar, path: paths.YearBar, build: yearBars, width: 10 * vg.Inch, height: 6 * vg.Inch},
	}

	for _, spec := range specs {
		p, err := spec.build(t)
		if err != nil {
			return models.ChartPaths{}, fmt.Errorf("build %s chart: %w", spec.kind, err)
		}
		if err := p.Save(spec.width, spec.height, spec.path); err != nil {
			return models.ChartPaths{}, models.NewIOError("render", spec.path, err)
		}
		slog.Debug("chart written", slog.String("chart", string(spec.kind)), slog.String("path", spec.path))
	}

	slog.Info("charts rendered", slog.String("dir", dir), slog.Int("rows", t.Len()))
	return paths, nil
}

// newGridPlot returns a plot with a tinted background and white grid lines.
func newGridPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.BackgroundColor = gridBackground

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.White
	grid.Horizontal.Color = color.White
	p.Add(grid)
	return p
}

// setEmptyRange gives a plot without data a fixed unit range.
func setEmptyRange(p *plot.Plot) {
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
}
