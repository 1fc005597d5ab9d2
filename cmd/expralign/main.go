// Command expralign runs the expression/clinical alignment pipeline end to
// end: load both datasets, encode ER status, align samples, and write the
// aligned tables plus the standard deviation histogram.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"expralign/internal/chart"
	"expralign/internal/config"
	"expralign/internal/dataprocessing"
	"expralign/internal/exporter"
	"expralign/internal/infrastructure"
)

func main() {
	expressionPath := flag.String("expression", "", "path to the tab-separated gene expression matrix")
	clinicalPath := flag.String("clinical", "", "path to the clinical xlsx workbook")
	outDir := flag.String("out", "", "output directory (defaults to configured output dir)")
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	if *expressionPath == "" || *clinicalPath == "" {
		fmt.Fprintln(os.Stderr, "usage: expralign -expression <tsv> -clinical <xlsx> [-out <dir>] [-config <yaml>]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *outDir == "" {
		*outDir = cfg.Paths.OutputDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	logger.Info("Starting expression/clinical alignment",
		slog.String("expression_file", *expressionPath),
		slog.String("clinical_file", *clinicalPath),
		slog.String("output_dir", *outDir))

	if err := run(logger, cfg, *expressionPath, *clinicalPath, *outDir); err != nil {
		logger.Error("Pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Pipeline complete", slog.String("output_dir", *outDir))
}

func run(logger *slog.Logger, cfg *config.Config, expressionPath, clinicalPath, outDir string) error {
	expr, err := dataprocessing.LoadExpressionMatrix(expressionPath)
	if err != nil {
		return fmt.Errorf("load expression data: %w", err)
	}
	logger.Info("Loaded expression matrix",
		slog.Int("samples", expr.NumSamples()),
		slog.Int("genes", expr.NumGenes()))

	records, err := dataprocessing.LoadClinicalRecords(clinicalPath)
	if err != nil {
		return fmt.Errorf("load clinical data: %w", err)
	}
	logger.Info("Loaded clinical records", slog.Int("records", len(records)))

	encoded, err := dataprocessing.EncodeERStatus(records)
	if err != nil {
		return fmt.Errorf("encode ER status: %w", err)
	}

	matcher := dataprocessing.NewSampleMatcher(logger)
	dataset, err := matcher.Align(expr, encoded)
	if err != nil {
		return fmt.Errorf("align samples: %w", err)
	}

	std, err := dataprocessing.GeneStdDev(dataset.Expression)
	if err != nil {
		return fmt.Errorf("compute gene standard deviations: %w", err)
	}

	histCfg := chart.HistogramConfig{
		Bins:  cfg.Analysis.HistogramBins,
		Alpha: cfg.Analysis.HistogramAlpha,
	}
	histPath := filepath.Join(outDir, "std_histogram.png")
	if err := chart.SaveStdDevHistogram(std, histPath, histCfg); err != nil {
		return fmt.Errorf("render histogram: %w", err)
	}

	writer := exporter.NewCSVWriter(outDir)
	if err := writer.WriteClinical("clinical_aligned.csv", dataset.Clinical); err != nil {
		return fmt.Errorf("export clinical table: %w", err)
	}
	if err := writer.WriteExpression("expression_aligned.csv", dataset.Expression); err != nil {
		return fmt.Errorf("export expression table: %w", err)
	}
	if err := writer.WriteStdDev("gene_stddev.csv", std); err != nil {
		return fmt.Errorf("export standard deviations: %w", err)
	}
	return nil
}
