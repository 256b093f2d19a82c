package repository

import (
	"medical-escrow-ledger/internal/domain/entity"
)

type PatientRepository interface {
	Create(patient *entity.Patient) error
	FindByAddress(address string) (*entity.Patient, error)
}
