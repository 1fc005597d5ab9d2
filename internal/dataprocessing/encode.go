package dataprocessing

import (
	"errors"
	"fmt"

	"expralign/pkg/contracts/domain"
)

// ErrBadCategory is returned when a record carries an ER status outside the
// {Negative, Positive} set the encoder is defined on.
var ErrBadCategory = errors.New("ER status outside {Negative, Positive}")

// EncodeERStatus converts the categorical ER status of each record into a
// binary indicator: 1 for Negative, 0 for Positive. The clinical loader
// guarantees the two-category invariant, but the encoder verifies its own
// precondition and fails on anything else rather than guessing.
func EncodeERStatus(records []domain.ClinicalRecord) ([]domain.EncodedClinicalRecord, error) {
	encoded := make([]domain.EncodedClinicalRecord, 0, len(records))
	for i, rec := range records {
		var indicator int
		switch rec.ERStatus {
		case domain.ERNegative:
			indicator = 1
		case domain.ERPositive:
			indicator = 0
		default:
			return nil, fmt.Errorf("record %d (%s): %w: %q", i, rec.SampleID, ErrBadCategory, rec.ERStatus)
		}
		encoded = append(encoded, domain.EncodedClinicalRecord{
			SampleID:  rec.SampleID,
			ERStatus:  indicator,
			AJCCStage: rec.AJCCStage,
		})
	}
	return encoded, nil
}
