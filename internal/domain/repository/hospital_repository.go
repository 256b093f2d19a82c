package repository

import (
	"medical-escrow-ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// HospitalRepository stores hospitals together with their capability tokens.
// A cap is minted exactly once with its hospital and is never reassigned.
type HospitalRepository interface {
	Create(hospital *entity.Hospital, cap *entity.HospitalCap) error
	FindByAddress(address string) (*entity.Hospital, error)
	FindCap(id uuid.UUID) (*entity.HospitalCap, error)
}
