// Package dataprocessing implements the gene expression / clinical data
// pipeline: loading, cleaning, encoding and sample alignment.
//
// # Architecture
//
// The package is organized into five sequential stages:
//
// 1. Expression loader: reads a gene-by-sample TSV matrix, drops incomplete
// genes and transposes to sample-major orientation
//
// 2. Clinical loader: reads the clinical Excel workbook and filters records
// to the two-category ER status allow-list
//
// 3. Encoder: binary-encodes ER status (Negative=1, Positive=0)
//
// 4. Matcher: normalizes expression sample names to canonical clinical IDs
// and aligns both tables to the same row order
//
// 5. Variability: per-gene sample standard deviation across samples
//
// # Usage
//
// Basic pipeline example:
//
//	expr, err := dataprocessing.LoadExpressionMatrix("expression.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records, err := dataprocessing.LoadClinicalRecords("clinical.xlsx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	encoded, err := dataprocessing.EncodeERStatus(records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	matcher := dataprocessing.NewSampleMatcher(slog.Default())
//	dataset, err := matcher.Align(expr, encoded)
//
// Every stage returns new values; inputs are never mutated, so the caller is
// free to reuse intermediate tables.
package dataprocessing
