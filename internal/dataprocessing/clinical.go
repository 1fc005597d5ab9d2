package dataprocessing

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"expralign/pkg/contracts/domain"
)

// ErrMissingColumn is returned when the clinical workbook lacks one of the
// required header columns.
var ErrMissingColumn = errors.New("required column not found")

// Column headers expected on the clinical workbook's header row.
const (
	colSampleID = "Complete TCGA ID"
	colERStatus = "ER Status"
	colStage    = "AJCC Stage"
)

// clinicalHeaderRow is the 0-based row index of the header. The workbook has
// a one-row preamble above it.
const clinicalHeaderRow = 1

// LoadClinicalRecords reads the clinical Excel workbook and returns the
// sample ID, ER status and AJCC stage of every usable record. Rows with a
// blank among the three fields are dropped, and only records whose ER status
// is exactly "Negative" or "Positive" are kept. Excluded rows are a data
// cleaning outcome, not an error.
func LoadClinicalRecords(filePath string) ([]domain.ClinicalRecord, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open clinical file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("clinical file %s has no sheets", filePath)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) <= clinicalHeaderRow {
		return nil, fmt.Errorf("clinical file %s has no header row", filePath)
	}

	header := rows[clinicalHeaderRow]
	idCol, erCol, stageCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case colSampleID:
			idCol = i
		case colERStatus:
			erCol = i
		case colStage:
			stageCol = i
		}
	}
	for col, idx := range map[string]int{colSampleID: idCol, colERStatus: erCol, colStage: stageCol} {
		if idx < 0 {
			return nil, fmt.Errorf("clinical file %s: %w: %q", filePath, ErrMissingColumn, col)
		}
	}

	var records []domain.ClinicalRecord
	excluded := 0
	for _, row := range rows[clinicalHeaderRow+1:] {
		rec := domain.ClinicalRecord{
			SampleID:  cellAt(row, idCol),
			ERStatus:  cellAt(row, erCol),
			AJCCStage: cellAt(row, stageCol),
		}
		if !keepClinicalRecord(rec) {
			excluded++
			continue
		}
		records = append(records, rec)
	}

	slog.Debug("loaded clinical records",
		slog.String("file", filePath),
		slog.Int("kept", len(records)),
		slog.Int("excluded", excluded))

	return records, nil
}

// keepClinicalRecord is the cleaning predicate: all three fields present and
// the ER status on the allow-list. Applying it to already-filtered records
// is a no-op.
func keepClinicalRecord(rec domain.ClinicalRecord) bool {
	if rec.SampleID == "" || rec.ERStatus == "" || rec.AJCCStage == "" {
		return false
	}
	return domain.ValidERStatus(rec.ERStatus)
}

// FilterClinicalRecords applies the clinical cleaning predicate to an
// in-memory slice. The loader already applies it; this is exposed so callers
// with records from other sources get the same exclusion policy.
func FilterClinicalRecords(records []domain.ClinicalRecord) []domain.ClinicalRecord {
	kept := make([]domain.ClinicalRecord, 0, len(records))
	for _, rec := range records {
		if keepClinicalRecord(rec) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// cellAt returns the trimmed cell value at idx, or "" when the row is short.
// excelize omits trailing empty cells, so short rows are routine.
func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
