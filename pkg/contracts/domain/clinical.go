package domain

// ER status categories accepted by the clinical pipeline. Any other value,
// including "Indeterminate" and blank cells, is filtered out during loading.
const (
	ERNegative = "Negative"
	ERPositive = "Positive"
)

// ValidERStatus reports whether status is on the clinical allow-list.
// The exclusion policy is exact, case-sensitive membership.
func ValidERStatus(status string) bool {
	return status == ERNegative || status == ERPositive
}

// ClinicalRecord represents one patient row selected from the clinical
// spreadsheet: the TCGA sample identifier, the estrogen-receptor status and
// the AJCC tumor stage.
type ClinicalRecord struct {
	SampleID  string `json:"sample_id" csv:"Complete TCGA ID" validate:"required"`
	ERStatus  string `json:"er_status" csv:"ER Status" validate:"required,oneof=Negative Positive"`
	AJCCStage string `json:"ajcc_stage" csv:"AJCC Stage" validate:"required"`
}

// EncodedClinicalRecord is a ClinicalRecord after binary encoding of the ER
// status field: 1 for Negative, 0 for Positive.
type EncodedClinicalRecord struct {
	SampleID  string `json:"sample_id" csv:"Complete TCGA ID"`
	ERStatus  int    `json:"er_status" csv:"ER Status" validate:"min=0,max=1"`
	AJCCStage string `json:"ajcc_stage" csv:"AJCC Stage"`
}
