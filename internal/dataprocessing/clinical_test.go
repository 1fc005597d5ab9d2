package dataprocessing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"expralign/pkg/contracts/domain"
)

// writeClinicalWorkbook builds an xlsx fixture with the one-row preamble the
// real clinical export carries: the header sits on the second row.
func writeClinicalWorkbook(t *testing.T, header []string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Clinical data export"))
	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &headerCells))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "clinical.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var clinicalHeader = []string{"Complete TCGA ID", "Gender", "ER Status", "AJCC Stage"}

func TestLoadClinicalRecords(t *testing.T) {
	path := writeClinicalWorkbook(t, clinicalHeader, [][]interface{}{
		{"TCGA-A1-01", "FEMALE", "Negative", "Stage I"},
		{"TCGA-A2-02", "FEMALE", "Positive", "Stage II"},
		{"TCGA-A3-03", "FEMALE", "Indeterminate", "Stage I"},
		{"TCGA-A4-04", "FEMALE", "Negative", ""},
		{"", "FEMALE", "Positive", "Stage III"},
		{"TCGA-A6-06", "FEMALE", "", "Stage II"},
	})

	records, err := LoadClinicalRecords(path)
	require.NoError(t, err)

	assert.Equal(t, []domain.ClinicalRecord{
		{SampleID: "TCGA-A1-01", ERStatus: "Negative", AJCCStage: "Stage I"},
		{SampleID: "TCGA-A2-02", ERStatus: "Positive", AJCCStage: "Stage II"},
	}, records)
}

func TestLoadClinicalRecords_MissingColumn(t *testing.T) {
	path := writeClinicalWorkbook(t,
		[]string{"Complete TCGA ID", "AJCC Stage"},
		[][]interface{}{{"TCGA-A1-01", "Stage I"}})

	_, err := LoadClinicalRecords(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "ER Status")
}

func TestLoadClinicalRecords_MissingFile(t *testing.T) {
	_, err := LoadClinicalRecords(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open clinical file")
}

// Re-filtering already-filtered records must change nothing.
func TestFilterClinicalRecords_Idempotent(t *testing.T) {
	input := []domain.ClinicalRecord{
		{SampleID: "TCGA-A1-01", ERStatus: "Negative", AJCCStage: "Stage I"},
		{SampleID: "TCGA-A2-02", ERStatus: "Positive", AJCCStage: "Stage II"},
		{SampleID: "TCGA-A3-03", ERStatus: "Equivocal", AJCCStage: "Stage I"},
		{SampleID: "TCGA-A4-04", ERStatus: "Negative", AJCCStage: ""},
	}

	once := FilterClinicalRecords(input)
	twice := FilterClinicalRecords(once)

	assert.Len(t, once, 2)
	assert.Equal(t, once, twice)
}

func TestValidERStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"Negative", true},
		{"Positive", true},
		{"negative", false},
		{"POSITIVE", false},
		{"Indeterminate", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ValidERStatus(tt.status))
		})
	}
}
