package usecase

import (
	"context"
	"fmt"

	"medical-escrow-ledger/internal/converter"
	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/delivery/http/middleware"
	"medical-escrow-ledger/internal/domain/entity"
	"medical-escrow-ledger/internal/domain/repository"
	"medical-escrow-ledger/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AppointmentUsecase is the per-clinic appointment ledger. Records are keyed
// by the caller-supplied creation timestamp, never deleted, and move through
// Pending -> Confirmed / Cancelled only.
type AppointmentUsecase interface {
	Create(ctx context.Context, clinicAddr string, req *dto.CreateAppointmentRequest, now uint64) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, clinicAddr string, key uint64) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, clinicAddr string, key uint64) error
	Pay(ctx context.Context, clinicAddr string, key uint64, amount uint64) (*dto.AppointmentResponse, error)
	ListForClinic(ctx context.Context, clinicAddr string) (*dto.AppointmentListResponse, error)
	ListForPatient(ctx context.Context, patientAddr, clinicAddr string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log         *logrus.Logger
	clinicRepo  repository.ClinicRepository
	patientRepo repository.PatientRepository
	transfer    service.ValueTransfer
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	patientRepo repository.PatientRepository,
	transfer service.ValueTransfer,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:         log,
		clinicRepo:  clinicRepo,
		patientRepo: patientRepo,
		transfer:    transfer,
	}
}

// Create books an appointment for the calling patient at the clinic, keyed
// by now. Two bookings landing on the same clock tick collide; the caller
// retries with a fresh timestamp, nothing is auto-disambiguated.
func (u *appointmentUsecase) Create(ctx context.Context, clinicAddr string, req *dto.CreateAppointmentRequest, now uint64) (*dto.AppointmentResponse, error) {
	caller, ok := middleware.GetCallerAddressFromContext(ctx)
	if !ok {
		return nil, ErrNoCaller
	}

	if err := entity.ValidateFields(req.Description, req.Date, req.TimeSlot); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	patient, err := u.patientRepo.FindByAddress(caller)
	if err != nil {
		u.log.Warnf("Booking rejected: unknown patient %s", caller)
		return nil, err
	}

	clinic, err := u.clinicRepo.FindByAddress(clinicAddr)
	if err != nil {
		u.log.Warnf("Booking rejected: unknown clinic %s", clinicAddr)
		return nil, err
	}

	if patient.Address == clinic.Address {
		return nil, fmt.Errorf("create appointment: %w", entity.ErrInvalidParty)
	}

	if clinic.HasAppointment(now) {
		u.log.Warnf("Booking rejected: key %d already used for clinic %s", now, clinicAddr)
		return nil, fmt.Errorf("create appointment at %d: %w", now, entity.ErrDuplicateKey)
	}

	appt := &entity.Appointment{
		ID:             uuid.New(),
		PatientAddress: patient.Address,
		ClinicAddress:  clinic.Address,
		Description:    req.Description,
		Date:           req.Date,
		TimeSlot:       req.TimeSlot,
		CreatedAt:      now,
		Status:         entity.AppointmentStatusPending,
	}
	clinic.Appointments[now] = appt

	u.log.Infof("Appointment created: clinic=%s, patient=%s, key=%d", clinicAddr, caller, now)
	return converter.AppointmentToResponse(appt), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, clinicAddr string, key uint64) (*dto.AppointmentResponse, error) {
	clinic, err := u.clinicRepo.FindByAddress(clinicAddr)
	if err != nil {
		return nil, err
	}

	appt, ok := clinic.Appointments[key]
	if !ok {
		return nil, fmt.Errorf("appointment %d: %w", key, entity.ErrNotFound)
	}

	return converter.AppointmentToResponse(appt), nil
}

// Cancel moves an appointment to Cancelled. Only the clinic's owning
// identity may cancel; a Cancelled record is terminal and a second cancel
// fails with ErrInvalidTransition.
func (u *appointmentUsecase) Cancel(ctx context.Context, clinicAddr string, key uint64) error {
	caller, ok := middleware.GetCallerAddressFromContext(ctx)
	if !ok {
		return ErrNoCaller
	}

	clinic, err := u.clinicRepo.FindByAddress(clinicAddr)
	if err != nil {
		return err
	}

	if caller != clinic.Address {
		u.log.Warnf("Cancel rejected: caller %s does not own clinic %s", caller, clinicAddr)
		return fmt.Errorf("cancel appointment: %w", entity.ErrUnauthorized)
	}

	appt, ok := clinic.Appointments[key]
	if !ok {
		return fmt.Errorf("appointment %d: %w", key, entity.ErrNotFound)
	}

	if err := appt.Cancel(); err != nil {
		return fmt.Errorf("cancel appointment %d: %w", key, err)
	}

	u.log.Infof("Appointment cancelled: clinic=%s, key=%d", clinicAddr, key)
	return nil
}

// Pay settles an appointment: debits the calling patient's escrow by amount,
// transfers the value straight to the clinic address (never into the
// clinic's stored wallet), and confirms the appointment. All checks run
// before the first mutation.
func (u *appointmentUsecase) Pay(ctx context.Context, clinicAddr string, key uint64, amount uint64) (*dto.AppointmentResponse, error) {
	caller, ok := middleware.GetCallerAddressFromContext(ctx)
	if !ok {
		return nil, ErrNoCaller
	}

	clinic, err := u.clinicRepo.FindByAddress(clinicAddr)
	if err != nil {
		return nil, err
	}

	appt, found := clinic.Appointments[key]
	if !found {
		return nil, fmt.Errorf("appointment %d: %w", key, entity.ErrNotFound)
	}

	if appt.PatientAddress != caller {
		u.log.Warnf("Payment rejected: caller %s is not the booked patient", caller)
		return nil, fmt.Errorf("pay appointment: %w", entity.ErrUnauthorized)
	}

	if !appt.IsPending() {
		return nil, fmt.Errorf("pay appointment in status %s: %w", appt.Status, entity.ErrInvalidTransition)
	}

	patient, err := u.patientRepo.FindByAddress(caller)
	if err != nil {
		return nil, err
	}

	if amount > patient.Wallet.Balance {
		return nil, fmt.Errorf("pay appointment: %w", entity.ErrInsufficientFunds)
	}

	// All checks passed; mutations below cannot fail.
	if err := patient.Wallet.Debit(amount); err != nil {
		return nil, err
	}
	if err := u.transfer.TransferOut(clinic.Address, amount); err != nil {
		return nil, err
	}
	if err := appt.Confirm(); err != nil {
		return nil, err
	}

	u.log.Infof("Appointment paid: clinic=%s, key=%d, amount=%d", clinicAddr, key, amount)
	return converter.AppointmentToResponse(appt), nil
}

// ListForClinic returns an unordered snapshot of the clinic's table.
func (u *appointmentUsecase) ListForClinic(ctx context.Context, clinicAddr string) (*dto.AppointmentListResponse, error) {
	clinic, err := u.clinicRepo.FindByAddress(clinicAddr)
	if err != nil {
		return nil, err
	}

	appts := clinic.AppointmentSnapshot()
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appts),
		Total:        len(appts),
	}, nil
}

// ListForPatient filters the clinic snapshot by patient address.
func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientAddr, clinicAddr string) (*dto.AppointmentListResponse, error) {
	clinic, err := u.clinicRepo.FindByAddress(clinicAddr)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Appointment, 0)
	for _, appt := range clinic.Appointments {
		if appt.PatientAddress == patientAddr {
			filtered = append(filtered, appt)
		}
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(filtered),
		Total:        len(filtered),
	}, nil
}
