package moviereport

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/moviereport-go/pkg/moviereport/analysis"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/charts"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/cleaner"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/loader"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/report"
)

// Dataset holds a loaded movie sheet before and after cleaning.
// Presentation layers load it once and pass it to every run.
type Dataset struct {
	// Source is the workbook path the data was read from.
	Source string
	// Raw is the table as loaded.
	Raw *models.Table
	// Clean is Raw after filling and deduplication.
	Clean *models.Table
}

// LoadDataset loads sheetName from the workbook at path and cleans it.
func LoadDataset(path, sheetName string) (*Dataset, error) {
	raw, err := loader.Load(path, sheetName)
	if err != nil {
		return nil, err
	}
	return NewDataset(path, raw), nil
}

// NewDataset cleans an already loaded table.
func NewDataset(source string, raw *models.Table) *Dataset {
	return &Dataset{
		Source: source,
		Raw:    raw,
		Clean:  cleaner.Clean(raw),
	}
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Summary holds the computed statistics.
	Summary models.Summary `json:"summary"`
	// ReportPath is the written report, empty in stats mode.
	ReportPath string `json:"report_path,omitempty"`
	// Charts holds the rendered chart images, empty unless in full mode.
	Charts models.ChartPaths `json:"charts"`
}

// Run analyses the cleaned dataset and, depending on opts.Mode, exports the
// report workbook, renders the charts and embeds them into the report.
// The report is written before charts are embedded; callers must not run
// two pipelines against the same ReportPath at once.
func Run(ds *Dataset, opts Options) (*Result, error) {
	table := ds.Clean
	if table.Len() == 0 {
		slog.Warn("analysing empty dataset", slog.String("source", ds.Source), slog.Any("error", ErrEmptyDataset))
	}

	res := &Result{Summary: analysis.Summarize(table)}

	if opts.ShouldExport() {
		if err := report.Export(opts.ReportPath, res.Summary.Genres, res.Summary.Ratings, res.Summary.Years); err != nil {
			return nil, fmt.Errorf("export report: %w", err)
		}
		res.ReportPath = opts.ReportPath
	}

	if opts.ShouldRenderCharts() {
		paths, err := RenderCharts(ds, opts.ChartsDir)
		if err != nil {
			return nil, err
		}
		res.Charts = paths
	}

	if opts.ShouldEmbedCharts() {
		if err := report.EmbedCharts(opts.ReportPath, res.Charts); err != nil {
			return nil, fmt.Errorf("embed charts: %w", err)
		}
	}

	slog.Info("analysis completed",
		slog.String("mode", string(opts.Mode)),
		slog.Int("movies", res.Summary.TotalMovies),
		slog.String("peak_year", res.Summary.PeakYear))
	return res, nil
}

// RenderCharts renders the chart images for the cleaned dataset into dir.
func RenderCharts(ds *Dataset, dir string) (models.ChartPaths, error) {
	paths, err := charts.Render(ds.Clean, dir)
	if err != nil {
		return models.ChartPaths{}, fmt.Errorf("render charts: %w", err)
	}
	return paths, nil
}

// FindMovie returns the first movie whose name equals name after trimming
// surrounding whitespace and ignoring case. A blank name matches nothing.
func FindMovie(t *models.Table, name string) (models.Movie, bool) {
	query := strings.TrimSpace(name)
	if query == "" || t.Len() == 0 {
		return models.Movie{}, false
	}
	for _, m := range t.Movies {
		if strings.EqualFold(strings.TrimSpace(m.Name), query) {
			return m, true
		}
	}
	return models.Movie{}, false
}
