package report

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
	"github.com/xuri/excelize/v2"
)

// ChartRowStep is the number of rows between successive chart anchors.
const ChartRowStep = 20

// EmbedCharts inserts the chart images into the "Charts" sheet of the
// existing workbook at path and saves it in place. Images are anchored at
// A1, A21, A41, ... in ChartPaths order and scaled down to fit their rows.
func EmbedCharts(path string, charts models.ChartPaths) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.NewIOError("open", path, models.ErrFileNotFound)
		}
		return models.NewIOError("open", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.NewIOError("open", path, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(SheetCharts); err != nil || idx < 0 {
		if _, err := f.NewSheet(SheetCharts); err != nil {
			return fmt.Errorf("create sheet %q: %w", SheetCharts, err)
		}
	}

	row := 1
	for _, chart := range charts.Files() {
		cell := fmt.Sprintf("A%d", row)
		opts, err := pictureOptions(f, chart, row)
		if err != nil {
			return err
		}
		if err := f.AddPicture(SheetCharts, cell, chart.Path, opts); err != nil {
			return models.NewIOError("embed", chart.Path, err)
		}
		slog.Debug("chart embedded",
			slog.String("chart", string(chart.Kind)),
			slog.String("cell", cell),
			slog.Float64("scale", opts.ScaleY))
		row += ChartRowStep
	}

	if err := f.Save(); err != nil {
		return models.NewIOError("save", path, err)
	}

	slog.Info("charts embedded", slog.String("path", path), slog.Int("charts", len(charts.Files())))
	return nil
}

// pictureOptions scales the image so it ends before the next anchor row.
func pictureOptions(f *excelize.File, chart models.ChartFile, row int) (*excelize.GraphicOptions, error) {
	img, err := os.Open(chart.Path)
	if err != nil {
		return nil, models.NewIOError("open", chart.Path, err)
	}
	defer img.Close()

	cfg, _, err := image.DecodeConfig(img)
	if err != nil {
		return nil, models.NewIOError("read", chart.Path, err)
	}

	limit := 0
	for r := row; r < row+ChartRowStep; r++ {
		height, err := f.GetRowHeight(SheetCharts, r)
		if err != nil || height <= 0 {
			height = DefaultRowHeight
		}
		limit += PointsToPixels(height)
	}

	scale := fitScale(cfg.Height, limit)
	return &excelize.GraphicOptions{
		AltText:         string(chart.Kind),
		ScaleX:          scale,
		ScaleY:          scale,
		LockAspectRatio: true,
		Positioning:     "oneCell",
	}, nil
}
