package repository

import (
	"fmt"

	"medical-escrow-ledger/internal/domain/entity"
	domainRepo "medical-escrow-ledger/internal/domain/repository"

	"github.com/google/uuid"
)

type hospitalRepository struct {
	hospitals map[string]*entity.Hospital
	caps      map[uuid.UUID]*entity.HospitalCap
}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{
		hospitals: make(map[string]*entity.Hospital),
		caps:      make(map[uuid.UUID]*entity.HospitalCap),
	}
}

func (r *hospitalRepository) Create(hospital *entity.Hospital, capability *entity.HospitalCap) error {
	if _, ok := r.hospitals[hospital.Address]; ok {
		return fmt.Errorf("hospital %s: %w", hospital.Address, entity.ErrDuplicateKey)
	}
	r.hospitals[hospital.Address] = hospital
	r.caps[capability.ID] = capability
	return nil
}

func (r *hospitalRepository) FindByAddress(address string) (*entity.Hospital, error) {
	hospital, ok := r.hospitals[address]
	if !ok {
		return nil, fmt.Errorf("hospital %s: %w", address, entity.ErrNotFound)
	}
	return hospital, nil
}

func (r *hospitalRepository) FindCap(id uuid.UUID) (*entity.HospitalCap, error) {
	capability, ok := r.caps[id]
	if !ok {
		return nil, fmt.Errorf("capability %s: %w", id, entity.ErrNotFound)
	}
	return capability, nil
}
