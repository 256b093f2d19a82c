package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type GenerateBillRequest struct {
	CapID      uuid.UUID `json:"cap_id" validate:"required"`
	PatientRef string    `json:"patient_ref" validate:"required,max=255"`
	Charges    uint64    `json:"charges" validate:"required,gte=1"`
	DueOffset  uint64    `json:"due_offset"`
	Payer      string    `json:"payer" validate:"required,max=255"`
}

type PayBillRequest struct {
	PatientRef string `json:"patient_ref" validate:"required,max=255"`
	Tendered   uint64 `json:"tendered" validate:"required,gte=1"`
}

type WithdrawAllRequest struct {
	CapID uuid.UUID `json:"cap_id" validate:"required"`
}

// Response DTOs

type BillResponse struct {
	ID         uuid.UUID `json:"id"`
	PatientRef string    `json:"patient_ref"`
	Charges    uint64    `json:"charges"`
	DueAt      uint64    `json:"due_at"`
}

type BalanceResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

type ChargeResponse struct {
	BillID  uuid.UUID `json:"bill_id"`
	Charges uint64    `json:"charges"`
}

type WithdrawAllResponse struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}
