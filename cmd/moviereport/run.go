package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ukaji3/moviereport-go/pkg/moviereport"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

var (
	outputPath string
	chartsDir  string
	mode       string
	noEmbed    bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Analyse the movie sheet and write the report",
		Args:  cobra.NoArgs,
		RunE:  runAnalysis,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report workbook path (default from config)")
	cmd.Flags().StringVar(&chartsDir, "charts-dir", "", "Directory for chart images (default from config)")
	cmd.Flags().StringVar(&mode, "mode", "", "Run mode: stats, report, full (default from config)")
	cmd.Flags().BoolVar(&noEmbed, "no-embed", false, "Do not embed chart images into the report")
	return cmd
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.ReportPath = outputPath
	}
	if cmd.Flags().Changed("charts-dir") {
		cfg.Output.ChartsDir = chartsDir
	}
	if cmd.Flags().Changed("mode") {
		cfg.Output.Mode = mode
	}

	opts, err := options(cfg)
	if err != nil {
		return err
	}
	if noEmbed {
		embed := false
		opts.EmbedCharts = &embed
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	res, err := moviereport.Run(ds, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	return printResult(cmd.OutOrStdout(), res)
}

// printResult writes the console summary of a run.
func printResult(w io.Writer, res *moviereport.Result) error {
	sum := res.Summary
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Analysis Completed!")
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Most movies released in year:\t%s\n", sum.PeakYear)
	fmt.Fprintf(tw, "Total movies:\t%d\n", sum.TotalMovies)

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Number of movies per genre:")
	fmt.Fprintln(tw, "Genre\tCount")
	for _, g := range sum.Genres {
		fmt.Fprintf(tw, "%s\t%d\n", g.Genre, g.Count)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Rating stats:")
	for _, m := range sum.Ratings.Metrics() {
		fmt.Fprintf(tw, "%s\t%s\n", m.Name, formatStat(m.Value))
	}

	if files := res.Charts.Files(); len(files) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Charts saved:")
		for _, f := range files {
			fmt.Fprintf(tw, " - %s:\t%s\n", f.Kind, f.Path)
		}
	}
	if res.ReportPath != "" {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "Report written to: %s\n", res.ReportPath)
	}
	return tw.Flush()
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// printMovie writes the known fields of m present in t.
func printMovie(w io.Writer, t *models.Table, m *models.Movie) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, col := range t.Bindings() {
		v, missing := m.Cell(col)
		if missing {
			v = "-"
		}
		fmt.Fprintf(tw, "%s:\t%s\n", col.Name, v)
	}
	return tw.Flush()
}
