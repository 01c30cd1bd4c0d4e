package charts

import (
	"image/color"

	"github.com/ukaji3/moviereport-go/pkg/moviereport/analysis"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RatingBins is the number of histogram bins for ratings.
const RatingBins = 10

var (
	histFill = color.RGBA{R: 76, G: 114, B: 176, A: 200}
	kdeLine  = color.RGBA{R: 49, G: 76, B: 122, A: 255}
)

// ratingBins splits [min, max] of values into n equal bins; the last bin
// includes max. A single distinct value is widened to [v-0.5, v+0.5].
func ratingBins(values []float64, n int) []plotter.HistogramBin {
	if len(values) == 0 || n <= 0 {
		return nil
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(n)

	bins := make([]plotter.HistogramBin, n)
	for i := range bins {
		bins[i].Min = lo + float64(i)*width
		bins[i].Max = lo + float64(i+1)*width
	}
	bins[n-1].Max = hi

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		if i < 0 {
			i = 0
		}
		bins[i].Weight++
	}
	return bins
}

func ratingsHistogram(t *models.Table) (*plot.Plot, error) {
	p := newGridPlot("Ratings Distribution", "Ratings", "Count")

	values := analysis.RatingValues(t)
	bins := ratingBins(values, RatingBins)
	if len(bins) == 0 {
		setEmptyRange(p)
		return p, nil
	}
	width := bins[0].Max - bins[0].Min

	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     width,
		FillColor: histFill,
		LineStyle: plotter.DefaultLineStyle,
	}
	hist.LineStyle.Color = color.White
	p.Add(hist)

	if kde := newGaussianKDE(values); kde != nil {
		// scale density to counts so the curve overlays the bars
		scale := float64(len(values)) * width
		curve := plotter.NewFunction(func(x float64) float64 { return kde.Density(x) * scale })
		curve.XMin = bins[0].Min
		curve.XMax = bins[len(bins)-1].Max
		curve.Samples = 200
		curve.Color = kdeLine
		curve.Width = vg.Points(2)
		p.Add(curve)
	}
	return p, nil
}
