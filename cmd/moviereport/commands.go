package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ukaji3/moviereport-go/internal/dashboard"
	"github.com/ukaji3/moviereport-go/pkg/moviereport"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/cleaner"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search NAME",
		Short: "Show the details of one movie",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			ds, err := loadDataset(cfg)
			if err != nil {
				return err
			}

			name := strings.Join(args, " ")
			movie, ok := moviereport.FindMovie(ds.Clean, name)
			if !ok {
				return fmt.Errorf("movie not found: %q", name)
			}
			return printMovie(cmd.OutOrStdout(), ds.Clean, &movie)
		},
	}
}

var (
	sortKey   string
	sortOrder string
	limit     int
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Report missing values and duplicates, then list the cleaned movies",
		Args:  cobra.NoArgs,
		RunE:  runClean,
	}
	cmd.Flags().StringVar(&sortKey, "sort", "year", "Sort cleaned movies by: year, ratings")
	cmd.Flags().StringVar(&sortOrder, "order", "asc", "Sort order: asc, desc")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows to list (0 lists all)")
	return cmd
}

func runClean(cmd *cobra.Command, args []string) error {
	key, err := cleaner.ParseSortKey(sortKey)
	if err != nil {
		return err
	}
	order, err := cleaner.ParseSortOrder(sortOrder)
	if err != nil {
		return err
	}

	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	in := cleaner.Inspect(ds.Raw)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Missing values before cleaning:")
	for _, c := range in.Missing {
		fmt.Fprintf(tw, "%s\t%d\n", c.Column, c.Missing)
	}
	fmt.Fprintf(tw, "Total missing:\t%d\n", in.TotalMissing())
	fmt.Fprintf(tw, "\nDuplicate rows:\t%d\n", len(in.Duplicates))
	fmt.Fprintf(tw, "Rows after cleaning:\t%d\n\n", ds.Clean.Len())

	sorted := cleaner.Sort(ds.Clean, key, order).Movies
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	fmt.Fprintf(tw, "%s\t%s\t%s\n", models.ColReleaseYear, models.ColMovieName, models.ColRatings)
	for i := range sorted {
		m := &sorted[i]
		year, _ := m.FieldValue(models.FieldReleaseYear)
		rating, _ := m.FieldValue(models.FieldRatings)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", year, m.Name, rating)
	}
	return tw.Flush()
}

func newChartsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Render the chart images only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("charts-dir") {
				cfg.Output.ChartsDir = chartsDir
			}
			ds, err := loadDataset(cfg)
			if err != nil {
				return err
			}

			paths, err := moviereport.RenderCharts(ds, cfg.Output.ChartsDir)
			if err != nil {
				return err
			}
			for _, f := range paths.Files() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", f.Kind, f.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&chartsDir, "charts-dir", "", "Directory for chart images (default from config)")
	return cmd
}

var addr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			opts, err := options(cfg)
			if err != nil {
				return err
			}
			ds, err := loadDataset(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return dashboard.New(ds, opts, nil).ListenAndServe(ctx, cfg.Server)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config: :8080)")
	return cmd
}
