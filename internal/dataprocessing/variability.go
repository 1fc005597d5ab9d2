package dataprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"expralign/pkg/contracts/domain"
)

// GeneStdDev computes the sample standard deviation (n-1 denominator) of each
// gene across all samples in the matrix. At least two samples are required
// for the estimator to be defined.
func GeneStdDev(expr *domain.ExpressionMatrix) (map[string]float64, error) {
	if expr.NumSamples() < 2 {
		return nil, fmt.Errorf("standard deviation needs at least 2 samples, have %d", expr.NumSamples())
	}
	std := make(map[string]float64, expr.NumGenes())
	for j, gene := range expr.Genes {
		std[gene] = stat.StdDev(expr.GeneColumn(j), nil)
	}
	return std, nil
}
