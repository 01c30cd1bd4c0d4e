package charts

import (
	"fmt"
	"math"

	"github.com/ukaji3/moviereport-go/pkg/moviereport/analysis"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// pieChart draws one wedge per genre with a percentage label inside the
// wedge and the genre name outside it. Wedges start at 3 o'clock and run
// counter-clockwise.
type pieChart struct {
	slices []models.GenreCount
	total  int
}

func newPieChart(dist []models.GenreCount) *pieChart {
	pc := &pieChart{slices: dist}
	for _, s := range dist {
		pc.total += s.Count
	}
	return pc
}

// Percent returns the share of slice i in percent.
func (pc *pieChart) Percent(i int) float64 {
	if pc.total == 0 {
		return 0
	}
	return 100 * float64(pc.slices[i].Count) / float64(pc.total)
}

// Plot implements plot.Plotter.
func (pc *pieChart) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := plt.X.Tick.Label
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter

	center := c.Center()
	if pc.total == 0 {
		c.FillText(sty, center, "No data")
		return
	}

	size := c.Rectangle.Size()
	radius := vg.Length(math.Min(float64(size.X), float64(size.Y))) * 0.38

	start := 0.0
	for i, s := range pc.slices {
		sweep := 2 * math.Pi * float64(s.Count) / float64(pc.total)

		var wedge vg.Path
		wedge.Move(center)
		wedge.Arc(center, radius, start, sweep)
		wedge.Close()
		c.SetColor(plotutil.Color(i))
		c.Fill(wedge)

		mid := start + sweep/2
		c.FillText(sty, polar(center, radius*0.6, mid), fmt.Sprintf("%.1f%%", pc.Percent(i)))

		label := sty
		if math.Cos(mid) >= 0 {
			label.XAlign = text.XLeft
		} else {
			label.XAlign = text.XRight
		}
		c.FillText(label, polar(center, radius*1.08, mid), s.Genre)

		start += sweep
	}
}

func polar(center vg.Point, r vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + r*vg.Length(math.Cos(angle)),
		Y: center.Y + r*vg.Length(math.Sin(angle)),
	}
}

func genrePie(t *models.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Genre Distribution"
	p.HideAxes()
	p.Add(newPieChart(analysis.GenreDistribution(t)))
	return p, nil
}
