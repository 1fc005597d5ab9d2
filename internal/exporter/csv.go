// Package exporter writes pipeline outputs to CSV for downstream tooling.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"expralign/pkg/contracts/domain"
)

// CSVWriter writes pipeline tables under a base output directory.
type CSVWriter struct {
	outputDir string
}

// NewCSVWriter creates a CSV writer rooted at outputDir.
func NewCSVWriter(outputDir string) *CSVWriter {
	return &CSVWriter{outputDir: outputDir}
}

// writeFile writes headers plus records to the named file inside the output
// directory, creating directories as needed.
func (w *CSVWriter) writeFile(name string, headers []string, records [][]string) error {
	fullPath := filepath.Join(w.outputDir, name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	slog.Info("wrote CSV file",
		slog.String("file_path", fullPath),
		slog.Int("record_count", len(records)))
	return writer.Error()
}

// WriteClinical writes the encoded clinical table with its three columns.
func (w *CSVWriter) WriteClinical(name string, records []domain.EncodedClinicalRecord) error {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{rec.SampleID, strconv.Itoa(rec.ERStatus), rec.AJCCStage}
	}
	return w.writeFile(name, []string{"Complete TCGA ID", "ER Status", "AJCC Stage"}, rows)
}

// WriteExpression writes the sample-major expression matrix with a NAME
// identifier column followed by one column per gene.
func (w *CSVWriter) WriteExpression(name string, expr *domain.ExpressionMatrix) error {
	headers := append([]string{"NAME"}, expr.Genes...)
	rows := make([][]string, expr.NumSamples())
	for i, sample := range expr.Samples {
		row := make([]string, 0, len(headers))
		row = append(row, sample)
		for _, v := range expr.Values[i] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		rows[i] = row
	}
	return w.writeFile(name, headers, rows)
}

// WriteStdDev writes the per-gene standard deviation series, sorted by gene
// identifier for stable output.
func (w *CSVWriter) WriteStdDev(name string, std map[string]float64) error {
	genes := make([]string, 0, len(std))
	for gene := range std {
		genes = append(genes, gene)
	}
	sort.Strings(genes)

	rows := make([][]string, len(genes))
	for i, gene := range genes {
		rows[i] = []string{gene, strconv.FormatFloat(std[gene], 'g', -1, 64)}
	}
	return w.writeFile(name, []string{"Gene", "StdDev"}, rows)
}
