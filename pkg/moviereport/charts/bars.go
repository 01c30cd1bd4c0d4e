package charts

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ukaji3/moviereport-go/pkg/moviereport/analysis"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// yearBars plots movies per release year. Rows with the unknown year 0 are
// left out here even though the peak-year summary counts them.
func yearBars(t *models.Table) (*plot.Plot, error) {
	p := newGridPlot("Movies Released Per Year", "Release Year", "Number of Movies")

	counts := analysis.ReleasedYearCounts(t)
	if len(counts) == 0 {
		setEmptyRange(p)
		return p, nil
	}

	width := vg.Points(math.Min(24, 560/float64(len(counts))))
	colors := palette.Heat(len(counts)+1, 1).Colors()
	labels := make([]string, len(counts))
	for i, c := range counts {
		bar, err := plotter.NewBarChart(plotter.Values{float64(c.Count)}, width)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", c.Year, err)
		}
		bar.XMin = float64(i)
		bar.Color = colors[i]
		bar.LineStyle.Width = 0
		p.Add(bar)
		labels[i] = strconv.Itoa(c.Year)
	}

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Y.Min = 0
	return p, nil
}
