// Package main provides the CLI entry point for moviereport.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/moviereport-go/internal/config"
	"github.com/ukaji3/moviereport-go/internal/logging"
	"github.com/ukaji3/moviereport-go/pkg/moviereport"
)

var (
	configPath string
	sourcePath string
	sheetName  string
	logLevel   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "moviereport",
		Short: "Analyse movie ratings & reviews spreadsheets",
		Long: `moviereport loads the movie ratings sheet from an Excel workbook, cleans it,
computes genre, rating and release-year statistics and writes an Excel report
with embedded charts.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&sourcePath, "source", "", "Source workbook (default from config: movie_data.xlsx)")
	flags.StringVar(&sheetName, "sheet", "", "Sheet to read (default from config)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newRunCmd(),
		newSearchCmd(),
		newCleanCmd(),
		newChartsCmd(),
		newServeCmd(),
	)
	return rootCmd
}

// setup loads the configuration, applies persistent flag overrides and
// installs the logger.
func setup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source.Path = sourcePath
	}
	if flags.Changed("sheet") {
		cfg.Source.Sheet = sheetName
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	logging.Setup(cfg.Logging, cmd.ErrOrStderr())
	return cfg, nil
}

// loadDataset reads and cleans the configured source sheet.
func loadDataset(cfg *config.Config) (*moviereport.Dataset, error) {
	ds, err := moviereport.LoadDataset(cfg.Source.Path, cfg.Source.Sheet)
	if err != nil {
		return nil, fmt.Errorf("loading movie data failed: %w", err)
	}
	if !ds.Raw.Found {
		slog.Warn("continuing with empty dataset", slog.String("sheet", cfg.Source.Sheet))
	}
	return ds, nil
}

// options converts the output configuration into pipeline options.
func options(cfg *config.Config) (moviereport.Options, error) {
	mode, err := moviereport.ParseMode(cfg.Output.Mode)
	if err != nil {
		return moviereport.Options{}, err
	}
	return moviereport.Options{
		Mode:       mode,
		ReportPath: cfg.Output.ReportPath,
		ChartsDir:  cfg.Output.ChartsDir,
	}, nil
}
