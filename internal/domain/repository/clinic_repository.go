package repository

import (
	"medical-escrow-ledger/internal/domain/entity"
)

type ClinicRepository interface {
	Create(clinic *entity.Clinic) error
	FindByAddress(address string) (*entity.Clinic, error)
}
