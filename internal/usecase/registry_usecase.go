package usecase

import (
	"context"
	"errors"
	"fmt"

	"medical-escrow-ledger/internal/converter"
	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/delivery/http/middleware"
	"medical-escrow-ledger/internal/domain/entity"
	"medical-escrow-ledger/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrNoCaller = errors.New("caller identity not found in context")

// RegistryUsecase creates the ledger's parties. Clinic and patient creation
// are admin-gated through the role registry; hospital creation is open and
// mints the hospital's capability token, handed to the creator exactly once.
type RegistryUsecase interface {
	CreateClinic(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.CreateHospitalResponse, error)
	GrantRole(ctx context.Context, role entity.Role, req *dto.GrantRoleRequest) error
	GetClinic(ctx context.Context, address string) (*dto.ClinicResponse, error)
	GetPatient(ctx context.Context, address string) (*dto.PatientResponse, error)
	GetHospital(ctx context.Context, address string) (*dto.HospitalResponse, error)
}

type registryUsecase struct {
	log          *logrus.Logger
	registry     repository.RoleRegistry
	clinicRepo   repository.ClinicRepository
	patientRepo  repository.PatientRepository
	hospitalRepo repository.HospitalRepository
}

func NewRegistryUsecase(
	log *logrus.Logger,
	registry repository.RoleRegistry,
	clinicRepo repository.ClinicRepository,
	patientRepo repository.PatientRepository,
	hospitalRepo repository.HospitalRepository,
) RegistryUsecase {
	return &registryUsecase{
		log:          log,
		registry:     registry,
		clinicRepo:   clinicRepo,
		patientRepo:  patientRepo,
		hospitalRepo: hospitalRepo,
	}
}

// CreateClinic registers a clinic with a zero escrow wallet and an empty
// appointment table. Admin-only.
func (u *registryUsecase) CreateClinic(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	caller, ok := middleware.GetCallerAddressFromContext(ctx)
	if !ok {
		return nil, ErrNoCaller
	}

	if !u.registry.IsAuthorized(caller, entity.RoleAdmin) {
		u.log.Warnf("Clinic creation rejected: caller %s is not an admin", caller)
		return nil, fmt.Errorf("create clinic: %w", entity.ErrUnauthorized)
	}

	if err := entity.ValidateFields(req.Address, req.Name, req.Phone, req.Email, req.Location); err != nil {
		return nil, fmt.Errorf("create clinic: %w", err)
	}

	clinic := entity.NewClinic(req.Address, req.Name, req.Phone, req.Email, req.Location)
	if err := u.clinicRepo.Create(clinic); err != nil {
		u.log.Warnf("Failed to create clinic %s: %+v", req.Address, err)
		return nil, err
	}

	u.log.Infof("Clinic created: address=%s, name=%s", clinic.Address, clinic.Name)
	return converter.ClinicToResponse(clinic), nil
}

// CreatePatient registers a patient with a zero escrow wallet. Admin-only.
func (u *registryUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	caller, ok := middleware.GetCallerAddressFromContext(ctx)
	if !ok {
		return nil, ErrNoCaller
	}

	if !u.registry.IsAuthorized(caller, entity.RoleAdmin) {
		u.log.Warnf("Patient creation rejected: caller %s is not an admin", caller)
		return nil, fmt.Errorf("create patient: %w", entity.ErrUnauthorized)
	}

	if err := entity.ValidateFields(req.Address, req.Name, req.Phone, req.Email); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}

	patient := entity.NewPatient(req.Address, req.Name, req.Phone, req.Email)
	if err := u.patientRepo.Create(patient); err != nil {
		u.log.Warnf("Failed to create patient %s: %+v", req.Address, err)
		return nil, err
	}

	u.log.Infof("Patient created: address=%s, name=%s", patient.Address, patient.Name)
	return converter.PatientToResponse(patient), nil
}

// CreateHospital registers a hospital and mints its capability. The cap id
// is returned only here; afterwards it exists solely in the holder's hands.
func (u *registryUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.CreateHospitalResponse, error) {
	if _, ok := middleware.GetCallerAddressFromContext(ctx); !ok {
		return nil, ErrNoCaller
	}

	if err := entity.ValidateFields(req.Address, req.Name, req.Phone, req.Email); err != nil {
		return nil, fmt.Errorf("create hospital: %w", err)
	}

	hospital := entity.NewHospital(req.Address, req.Name, req.Phone, req.Email)
	capability := &entity.HospitalCap{
		ID:              uuid.New(),
		HospitalAddress: hospital.Address,
	}

	if err := u.hospitalRepo.Create(hospital, capability); err != nil {
		u.log.Warnf("Failed to create hospital %s: %+v", req.Address, err)
		return nil, err
	}

	u.log.Infof("Hospital created: address=%s, name=%s", hospital.Address, hospital.Name)
	return &dto.CreateHospitalResponse{
		Hospital: *converter.HospitalToResponse(hospital),
		CapID:    capability.ID,
	}, nil
}

// GrantRole grows a role set. Admin-only, including when granting admin.
func (u *registryUsecase) GrantRole(ctx context.Context, role entity.Role, req *dto.GrantRoleRequest) error {
	caller, ok := middleware.GetCallerAddressFromContext(ctx)
	if !ok {
		return ErrNoCaller
	}

	if !u.registry.IsAuthorized(caller, entity.RoleAdmin) {
		u.log.Warnf("Role grant rejected: caller %s is not an admin", caller)
		return fmt.Errorf("grant %s role: %w", role, entity.ErrUnauthorized)
	}

	if err := entity.ValidateField(req.Address); err != nil {
		return fmt.Errorf("grant %s role: %w", role, err)
	}

	u.registry.Grant(role, req.Address)
	u.log.Infof("Role granted: role=%s, address=%s", role, req.Address)
	return nil
}

func (u *registryUsecase) GetClinic(ctx context.Context, address string) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByAddress(address)
	if err != nil {
		return nil, err
	}
	return converter.ClinicToResponse(clinic), nil
}

func (u *registryUsecase) GetPatient(ctx context.Context, address string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByAddress(address)
	if err != nil {
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

func (u *registryUsecase) GetHospital(ctx context.Context, address string) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByAddress(address)
	if err != nil {
		return nil, err
	}
	return converter.HospitalToResponse(hospital), nil
}
