// Package moviereport loads, cleans and analyses movie rating spreadsheets
// and exports the results as an Excel report with embedded charts.
package moviereport

import (
	"fmt"

	"github.com/ukaji3/moviereport-go/pkg/moviereport/charts"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/loader"
)

// Mode represents how much output a run produces.
type Mode string

const (
	// ModeStats computes statistics only; no files are written.
	ModeStats Mode = "stats"
	// ModeReport also writes the report workbook.
	ModeReport Mode = "report"
	// ModeFull also renders charts and embeds them into the report.
	ModeFull Mode = "full"
)

// DefaultReportPath is the default report workbook file name.
const DefaultReportPath = "movies_analysis_report.xlsx"

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeStats, ModeReport, ModeFull:
		return m, nil
	}
	return "", fmt.Errorf("invalid mode: %s (must be stats, report, or full)", s)
}

// Options configures a pipeline run.
type Options struct {
	// Mode specifies the run mode (stats, report, full).
	Mode Mode
	// ReportPath is the report workbook path.
	ReportPath string
	// ChartsDir is the directory for chart images.
	ChartsDir string
	// EmbedCharts specifies whether rendered charts go into the report.
	// If nil, defaults to true for full mode.
	EmbedCharts *bool
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		Mode:       ModeFull,
		ReportPath: DefaultReportPath,
		ChartsDir:  charts.DefaultDir,
	}
}

// ShouldExport returns whether to write the report workbook.
func (o Options) ShouldExport() bool {
	return o.Mode == ModeReport || o.Mode == ModeFull
}

// ShouldRenderCharts returns whether to render chart images.
func (o Options) ShouldRenderCharts() bool {
	return o.Mode == ModeFull
}

// ShouldEmbedCharts returns whether to embed chart images into the report.
func (o Options) ShouldEmbedCharts() bool {
	if !o.ShouldRenderCharts() {
		return false
	}
	if o.EmbedCharts != nil {
		return *o.EmbedCharts
	}
	return true
}

// DefaultSheetName is the sheet read from the source workbook.
const DefaultSheetName = loader.DefaultSheetName
