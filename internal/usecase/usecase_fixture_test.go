package usecase

import (
	"context"
	"io"
	"testing"

	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/delivery/http/middleware"
	"medical-escrow-ledger/internal/repository"
	"medical-escrow-ledger/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	adminAddr    = "0xadmin"
	clinicAddr   = "0xclinic"
	patientAddr  = "0xpatient"
	hospitalAddr = "0xhospital"
	payerAddr    = "0xpayer"
)

// fixture wires the full ledger core with in-memory stores and the journaled
// settlement service, seeded with one admin.
type fixture struct {
	settlement  *service.SettlementService
	registry    RegistryUsecase
	appointment AppointmentUsecase
	wallet      WalletUsecase
	billing     BillingUsecase
}

func newFixture() *fixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	roleRegistry := repository.NewRoleRegistry(adminAddr)
	clinicRepo := repository.NewClinicRepository()
	patientRepo := repository.NewPatientRepository()
	hospitalRepo := repository.NewHospitalRepository()
	settlement := service.NewSettlementService(log)

	return &fixture{
		settlement:  settlement,
		registry:    NewRegistryUsecase(log, roleRegistry, clinicRepo, patientRepo, hospitalRepo),
		appointment: NewAppointmentUsecase(log, clinicRepo, patientRepo, settlement),
		wallet:      NewWalletUsecase(log, patientRepo, clinicRepo, hospitalRepo, settlement),
		billing:     NewBillingUsecase(log, hospitalRepo, settlement),
	}
}

func callerCtx(addr string) context.Context {
	return middleware.WithCallerAddress(context.Background(), addr)
}

func (f *fixture) seedClinic(t *testing.T, address string) {
	t.Helper()
	_, err := f.registry.CreateClinic(callerCtx(adminAddr), &dto.CreateClinicRequest{
		Address:  address,
		Name:     "City Clinic",
		Phone:    "555-0100",
		Email:    "clinic@example.com",
		Location: "12 Main St",
	})
	if err != nil {
		t.Fatalf("seed clinic %s: %v", address, err)
	}
}

func (f *fixture) seedPatient(t *testing.T, address string) {
	t.Helper()
	_, err := f.registry.CreatePatient(callerCtx(adminAddr), &dto.CreatePatientRequest{
		Address: address,
		Name:    "Jordan Doe",
		Phone:   "555-0101",
		Email:   "jordan@example.com",
	})
	if err != nil {
		t.Fatalf("seed patient %s: %v", address, err)
	}
}

func (f *fixture) seedHospital(t *testing.T, address string) uuid.UUID {
	t.Helper()
	resp, err := f.registry.CreateHospital(callerCtx(address), &dto.CreateHospitalRequest{
		Address: address,
		Name:    "General Hospital",
		Phone:   "555-0102",
		Email:   "hospital@example.com",
	})
	if err != nil {
		t.Fatalf("seed hospital %s: %v", address, err)
	}
	return resp.CapID
}

func (f *fixture) deposit(t *testing.T, owner string, amount uint64) {
	t.Helper()
	_, err := f.wallet.Deposit(callerCtx(owner), &dto.DepositRequest{Owner: owner, Amount: amount})
	if err != nil {
		t.Fatalf("deposit %d to %s: %v", amount, owner, err)
	}
}

func (f *fixture) book(t *testing.T, patient, clinic string, now uint64) {
	t.Helper()
	_, err := f.appointment.Create(callerCtx(patient), clinic, &dto.CreateAppointmentRequest{
		Description: "Checkup",
		Date:        "2026-09-01",
		TimeSlot:    "10:00",
	}, now)
	if err != nil {
		t.Fatalf("book at %d: %v", now, err)
	}
}
