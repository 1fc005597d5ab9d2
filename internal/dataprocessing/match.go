package dataprocessing

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"expralign/pkg/contracts/domain"
)

// ErrAmbiguousSample is returned when sample name normalization cannot pick a
// single pairing: either one expression name contains two different clinical
// IDs, or two expression rows normalize to the same clinical ID.
var ErrAmbiguousSample = errors.New("ambiguous sample match")

// SampleMatcher reconciles the differently-formatted sample identifiers of
// the expression and clinical sources. Expression exports decorate the TCGA
// ID with portion and plate suffixes, so matching is by substring
// containment, normalized to the canonical clinical ID.
type SampleMatcher struct {
	logger *slog.Logger
}

// NewSampleMatcher creates a matcher. A nil logger falls back to the default.
func NewSampleMatcher(logger *slog.Logger) *SampleMatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &SampleMatcher{logger: logger}
}

// NormalizeSampleName returns the canonical clinical ID contained in the
// expression sample name, if exactly one of the given IDs is a substring of
// it. The second result is false when no ID matches. More than one matching
// ID is an ambiguity and yields an error.
func NormalizeSampleName(name string, clinicalIDs []string) (string, bool, error) {
	matched := ""
	for _, id := range clinicalIDs {
		if id == "" || !strings.Contains(name, id) {
			continue
		}
		if matched != "" && matched != id {
			return "", false, fmt.Errorf("expression sample %q: %w: contains both %q and %q",
				name, ErrAmbiguousSample, matched, id)
		}
		matched = id
	}
	return matched, matched != "", nil
}

// Align normalizes the expression sample names against the clinical ID list,
// keeps only the samples present in both sources, and reorders the expression
// rows to the clinical row order. Neither input is mutated.
//
// Clinical records with no expression counterpart are dropped; expression
// samples with no clinical counterpart are dropped. An expression name
// containing two clinical IDs, or two expression rows resolving to the same
// clinical ID, fails with ErrAmbiguousSample.
func (m *SampleMatcher) Align(expr *domain.ExpressionMatrix, clinical []domain.EncodedClinicalRecord) (*domain.AlignedDataset, error) {
	clinicalIDs := make([]string, len(clinical))
	for i, rec := range clinical {
		clinicalIDs[i] = rec.SampleID
	}

	// Normalized clinical ID -> expression row index.
	exprRowByID := make(map[string]int, len(expr.Samples))
	unmatched := 0
	for i, name := range expr.Samples {
		id, ok, err := NormalizeSampleName(name, clinicalIDs)
		if err != nil {
			return nil, err
		}
		if !ok {
			unmatched++
			continue
		}
		if prev, dup := exprRowByID[id]; dup {
			return nil, fmt.Errorf("clinical ID %q: %w: expression samples %q and %q both resolve to it",
				id, ErrAmbiguousSample, expr.Samples[prev], name)
		}
		exprRowByID[id] = i
	}

	var (
		keptClinical []domain.EncodedClinicalRecord
		samples      []string
		values       [][]float64
	)
	for _, rec := range clinical {
		row, ok := exprRowByID[rec.SampleID]
		if !ok {
			continue
		}
		keptClinical = append(keptClinical, rec)
		samples = append(samples, rec.SampleID)
		values = append(values, expr.Values[row])
	}

	m.logger.Info("aligned expression and clinical samples",
		slog.Int("matched", len(samples)),
		slog.Int("expression_unmatched", unmatched),
		slog.Int("clinical_unmatched", len(clinical)-len(keptClinical)))

	dataset := &domain.AlignedDataset{
		Expression: &domain.ExpressionMatrix{
			Samples: samples,
			Genes:   expr.Genes,
			Values:  values,
		},
		Clinical: keptClinical,
	}
	if err := dataset.Validate(); err != nil {
		return nil, fmt.Errorf("alignment invariant violated: %w", err)
	}
	return dataset, nil
}
