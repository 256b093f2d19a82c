package entity

import (
	"github.com/google/uuid"
)

// Bill is an issued charge. The charge amount is fixed at issue time; the
// record is removed from its payer table on successful payment, not flagged.
type Bill struct {
	ID         uuid.UUID `json:"id"`
	PatientRef string    `json:"patient_ref"`
	Charges    uint64    `json:"charges"`
	DueAt      uint64    `json:"due_at"`
}
