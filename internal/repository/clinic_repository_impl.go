package repository

import (
	"fmt"

	"medical-escrow-ledger/internal/domain/entity"
	domainRepo "medical-escrow-ledger/internal/domain/repository"
)

// Stores are plain keyed tables. They carry no locking: every public
// operation runs as one serialized unit of work (see middleware.Serializer),
// so lookups always see the most recent committed write.
type clinicRepository struct {
	clinics map[string]*entity.Clinic
}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{
		clinics: make(map[string]*entity.Clinic),
	}
}

func (r *clinicRepository) Create(clinic *entity.Clinic) error {
	if _, ok := r.clinics[clinic.Address]; ok {
		return fmt.Errorf("clinic %s: %w", clinic.Address, entity.ErrDuplicateKey)
	}
	r.clinics[clinic.Address] = clinic
	return nil
}

func (r *clinicRepository) FindByAddress(address string) (*entity.Clinic, error) {
	clinic, ok := r.clinics[address]
	if !ok {
		return nil, fmt.Errorf("clinic %s: %w", address, entity.ErrNotFound)
	}
	return clinic, nil
}
