package repository

import (
	"fmt"

	"medical-escrow-ledger/internal/domain/entity"
	domainRepo "medical-escrow-ledger/internal/domain/repository"
)

type patientRepository struct {
	patients map[string]*entity.Patient
}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{
		patients: make(map[string]*entity.Patient),
	}
}

func (r *patientRepository) Create(patient *entity.Patient) error {
	if _, ok := r.patients[patient.Address]; ok {
		return fmt.Errorf("patient %s: %w", patient.Address, entity.ErrDuplicateKey)
	}
	r.patients[patient.Address] = patient
	return nil
}

func (r *patientRepository) FindByAddress(address string) (*entity.Patient, error) {
	patient, ok := r.patients[address]
	if !ok {
		return nil, fmt.Errorf("patient %s: %w", address, entity.ErrNotFound)
	}
	return patient, nil
}
