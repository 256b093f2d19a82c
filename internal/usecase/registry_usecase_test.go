package usecase

import (
	"errors"
	"testing"

	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/domain/entity"
)

func TestCreateClinicAdminGated(t *testing.T) {
	f := newFixture()

	_, err := f.registry.CreateClinic(callerCtx("0xrandom"), &dto.CreateClinicRequest{
		Address:  clinicAddr,
		Name:     "City Clinic",
		Phone:    "555-0100",
		Email:    "clinic@example.com",
		Location: "12 Main St",
	})
	if !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("non-admin create: got %v, want ErrUnauthorized", err)
	}

	f.seedClinic(t, clinicAddr)

	clinic, err := f.registry.GetClinic(callerCtx(adminAddr), clinicAddr)
	if err != nil {
		t.Fatalf("get clinic: %v", err)
	}
	if clinic.Balance != 0 {
		t.Fatalf("new clinic balance = %d, want 0", clinic.Balance)
	}
	if clinic.Name != "City Clinic" || clinic.Location != "12 Main St" {
		t.Fatalf("clinic profile = %+v", clinic)
	}
}

func TestCreatePatientAdminGated(t *testing.T) {
	f := newFixture()

	_, err := f.registry.CreatePatient(callerCtx("0xrandom"), &dto.CreatePatientRequest{
		Address: patientAddr,
		Name:    "Jordan Doe",
		Phone:   "555-0101",
		Email:   "jordan@example.com",
	})
	if !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("non-admin create: got %v, want ErrUnauthorized", err)
	}
}

func TestCreateClinicDuplicate(t *testing.T) {
	f := newFixture()
	f.seedClinic(t, clinicAddr)

	_, err := f.registry.CreateClinic(callerCtx(adminAddr), &dto.CreateClinicRequest{
		Address:  clinicAddr,
		Name:     "Other Clinic",
		Phone:    "555-0199",
		Email:    "other@example.com",
		Location: "99 Side St",
	})
	if !errors.Is(err, entity.ErrDuplicateKey) {
		t.Fatalf("duplicate clinic: got %v, want ErrDuplicateKey", err)
	}
}

func TestCreateClinicValidation(t *testing.T) {
	f := newFixture()

	_, err := f.registry.CreateClinic(callerCtx(adminAddr), &dto.CreateClinicRequest{
		Address:  clinicAddr,
		Name:     "",
		Phone:    "555-0100",
		Email:    "clinic@example.com",
		Location: "12 Main St",
	})
	if !errors.Is(err, entity.ErrInvalidData) {
		t.Fatalf("empty name: got %v, want ErrInvalidData", err)
	}
}

func TestGrantRole(t *testing.T) {
	f := newFixture()

	if err := f.registry.GrantRole(callerCtx("0xrandom"), entity.RoleAdmin, &dto.GrantRoleRequest{
		Address: "0xnewadmin",
	}); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("non-admin grant: got %v, want ErrUnauthorized", err)
	}

	if err := f.registry.GrantRole(callerCtx(adminAddr), entity.RoleAdmin, &dto.GrantRoleRequest{
		Address: "0xnewadmin",
	}); err != nil {
		t.Fatalf("admin grant: %v", err)
	}

	// The new admin can now create entities.
	_, err := f.registry.CreatePatient(callerCtx("0xnewadmin"), &dto.CreatePatientRequest{
		Address: patientAddr,
		Name:    "Jordan Doe",
		Phone:   "555-0101",
		Email:   "jordan@example.com",
	})
	if err != nil {
		t.Fatalf("create by granted admin: %v", err)
	}
}

func TestCreateHospitalMintsCap(t *testing.T) {
	f := newFixture()

	capA := f.seedHospital(t, hospitalAddr)
	capB := f.seedHospital(t, "0xotherhospital")
	if capA == capB {
		t.Fatalf("cap ids collide")
	}

	hospital, err := f.registry.GetHospital(callerCtx(hospitalAddr), hospitalAddr)
	if err != nil {
		t.Fatalf("get hospital: %v", err)
	}
	if hospital.Balance != 0 {
		t.Fatalf("new hospital balance = %d, want 0", hospital.Balance)
	}
}

func TestGetUnknownEntities(t *testing.T) {
	f := newFixture()

	if _, err := f.registry.GetClinic(callerCtx(adminAddr), "0xnone"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("unknown clinic: got %v, want ErrNotFound", err)
	}
	if _, err := f.registry.GetPatient(callerCtx(adminAddr), "0xnone"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("unknown patient: got %v, want ErrNotFound", err)
	}
	if _, err := f.registry.GetHospital(callerCtx(adminAddr), "0xnone"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("unknown hospital: got %v, want ErrNotFound", err)
	}
}
