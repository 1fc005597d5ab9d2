// Package chart renders the diagnostic figures of the pipeline. Rendering is
// delegated to gonum/plot; this package only assembles the figure and writes
// it to disk.
package chart

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HistogramConfig controls the standard deviation histogram rendering.
type HistogramConfig struct {
	Bins  int     // number of histogram bins
	Alpha float64 // bar fill opacity in [0, 1]
}

// DefaultHistogramConfig returns the rendering defaults: 100 bins at half
// opacity.
func DefaultHistogramConfig() HistogramConfig {
	return HistogramConfig{Bins: 100, Alpha: 0.5}
}

// SaveStdDevHistogram renders a histogram of per-gene standard deviations and
// writes it to filePath. The image format follows the file extension (.png,
// .svg, .pdf per gonum/plot).
func SaveStdDevHistogram(std map[string]float64, filePath string, cfg HistogramConfig) error {
	if len(std) == 0 {
		return fmt.Errorf("no standard deviations to plot")
	}
	if cfg.Bins <= 0 {
		cfg.Bins = DefaultHistogramConfig().Bins
	}
	if cfg.Alpha < 0 || cfg.Alpha > 1 {
		return fmt.Errorf("histogram alpha %v outside [0, 1]", cfg.Alpha)
	}

	values := make(plotter.Values, 0, len(std))
	for _, v := range std {
		values = append(values, v)
	}

	p := plot.New()
	p.Title.Text = "Histogram of standard deviations of gene expression data"
	p.X.Label.Text = "Standard deviations"
	p.Y.Label.Text = "Gene frequency"

	hist, err := plotter.NewHist(values, cfg.Bins)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	hist.FillColor = color.NRGBA{R: 31, G: 119, B: 180, A: uint8(cfg.Alpha * 255)}
	p.Add(hist)

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, filePath); err != nil {
		return fmt.Errorf("save histogram: %w", err)
	}

	slog.Info("wrote standard deviation histogram",
		slog.String("file", filePath),
		slog.Int("genes", len(std)),
		slog.Int("bins", cfg.Bins))
	return nil
}
