package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"expralign/pkg/contracts/domain"
)

// missingCell reports whether a TSV cell counts as a missing measurement.
// TCGA expression exports use empty cells or the usual NA spellings.
func missingCell(cell string) bool {
	switch strings.TrimSpace(cell) {
	case "", "NA", "N/A", "NaN", "nan", "null", "NULL":
		return true
	}
	return false
}

// LoadExpressionMatrix reads a tab-separated gene expression file. The first
// row holds sample identifiers, the first column holds gene identifiers and
// every other cell is a numeric expression level.
//
// Genes with a missing or unparseable value in any sample are dropped, so the
// returned matrix contains no gaps. The file's gene-major layout is transposed
// into the sample-major orientation the rest of the pipeline works with.
func LoadExpressionMatrix(filePath string) (*domain.ExpressionMatrix, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open expression file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse expression file %s: %w", filePath, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("expression file %s has no data rows", filePath)
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("expression file %s has no sample columns", filePath)
	}
	samples := make([]string, len(header)-1)
	for i, name := range header[1:] {
		samples[i] = strings.TrimSpace(name)
	}

	var (
		genes   []string
		columns [][]float64 // one parsed column of values per retained gene
		dropped int
	)

	for lineNo, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("expression file %s: row %d has %d fields, header has %d",
				filePath, lineNo+2, len(row), len(header))
		}

		gene := strings.TrimSpace(row[0])
		values := make([]float64, len(samples))
		complete := true
		for i, cell := range row[1:] {
			if missingCell(cell) {
				complete = false
				break
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				complete = false
				break
			}
			values[i] = v
		}
		if !complete {
			dropped++
			continue
		}
		genes = append(genes, gene)
		columns = append(columns, values)
	}

	// Transpose gene-major columns into sample-major rows.
	matrix := make([][]float64, len(samples))
	for i := range samples {
		row := make([]float64, len(genes))
		for j := range genes {
			row[j] = columns[j][i]
		}
		matrix[i] = row
	}

	slog.Debug("loaded expression matrix",
		slog.String("file", filePath),
		slog.Int("samples", len(samples)),
		slog.Int("genes", len(genes)),
		slog.Int("dropped_genes", dropped))

	return &domain.ExpressionMatrix{
		Samples: samples,
		Genes:   genes,
		Values:  matrix,
	}, nil
}
