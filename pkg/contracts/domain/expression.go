package domain

import "fmt"

// ExpressionMatrix holds gene expression values in sample-major orientation:
// Values[i][j] is the expression level of Genes[j] in Samples[i]. The loader
// guarantees the matrix is rectangular and free of missing values.
type ExpressionMatrix struct {
	Samples []string    `json:"samples"`
	Genes   []string    `json:"genes"`
	Values  [][]float64 `json:"values"`
}

// NumSamples returns the number of sample rows.
func (m *ExpressionMatrix) NumSamples() int { return len(m.Samples) }

// NumGenes returns the number of gene columns.
func (m *ExpressionMatrix) NumGenes() int { return len(m.Genes) }

// Row returns the expression values of the sample at index i.
func (m *ExpressionMatrix) Row(i int) []float64 { return m.Values[i] }

// GeneColumn returns the expression values of gene j across all samples.
func (m *ExpressionMatrix) GeneColumn(j int) []float64 {
	col := make([]float64, len(m.Values))
	for i, row := range m.Values {
		col[i] = row[j]
	}
	return col
}

// SampleIndex returns the row index of the named sample, or -1.
func (m *ExpressionMatrix) SampleIndex(name string) int {
	for i, s := range m.Samples {
		if s == name {
			return i
		}
	}
	return -1
}

// AlignedDataset pairs an expression matrix with clinical records restricted
// to the samples present in both sources, in identical row order.
type AlignedDataset struct {
	Expression *ExpressionMatrix       `json:"expression"`
	Clinical   []EncodedClinicalRecord `json:"clinical"`
}

// Validate checks the alignment invariant: the expression sample sequence and
// the clinical sample-ID sequence must be identical, value for value.
func (d *AlignedDataset) Validate() error {
	if len(d.Expression.Samples) != len(d.Clinical) {
		return fmt.Errorf("aligned dataset has %d expression samples but %d clinical records",
			len(d.Expression.Samples), len(d.Clinical))
	}
	for i, rec := range d.Clinical {
		if d.Expression.Samples[i] != rec.SampleID {
			return fmt.Errorf("sample order mismatch at row %d: expression %q, clinical %q",
				i, d.Expression.Samples[i], rec.SampleID)
		}
	}
	return nil
}
