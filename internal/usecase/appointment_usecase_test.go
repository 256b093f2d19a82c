package usecase

import (
	"errors"
	"strings"
	"testing"

	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/domain/entity"
)

// Scenario: book, deposit, pay; the appointment confirms and the patient's
// escrow ends empty.
func TestBookDepositPay(t *testing.T) {
	f := newFixture()
	f.seedClinic(t, clinicAddr)
	f.seedPatient(t, patientAddr)

	appt, err := f.appointment.Create(callerCtx(patientAddr), clinicAddr, &dto.CreateAppointmentRequest{
		Description: "Checkup",
		Date:        "2026-09-01",
		TimeSlot:    "10:00",
	}, 1000)
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	if appt.Status != "pending" {
		t.Fatalf("new appointment status = %s, want pending", appt.Status)
	}

	f.deposit(t, patientAddr, 50)

	paid, err := f.appointment.Pay(callerCtx(patientAddr), clinicAddr, 1000, 50)
	if err != nil {
		t.Fatalf("pay appointment: %v", err)
	}
	if paid.Status != "confirmed" {
		t.Fatalf("paid appointment status = %s, want confirmed", paid.Status)
	}

	patient, err := f.registry.GetPatient(callerCtx(patientAddr), patientAddr)
	if err != nil {
		t.Fatalf("get patient: %v", err)
	}
	if patient.Balance != 0 {
		t.Fatalf("patient balance after pay = %d, want 0", patient.Balance)
	}

	// Direct settlement: the clinic's stored escrow never receives credit.
	clinic, err := f.registry.GetClinic(callerCtx(clinicAddr), clinicAddr)
	if err != nil {
		t.Fatalf("get clinic: %v", err)
	}
	if clinic.Balance != 0 {
		t.Fatalf("clinic balance after pay = %d, want 0", clinic.Balance)
	}

	// The value left the system through the transfer primitive instead.
	journal := f.settlement.Journal()
	last := journal[len(journal)-1]
	if last.Direction != entity.SettlementOut || last.Party != clinicAddr || last.Amount != 50 {
		t.Fatalf("last settlement = %+v, want out/%s/50", last, clinicAddr)
	}
}

// Scenario: two bookings on the same clock tick collide on the table key.
func TestDuplicateBookingKey(t *testing.T) {
	f := newFixture()
	f.seedClinic(t, clinicAddr)
	f.seedPatient(t, patientAddr)

	f.book(t, patientAddr, clinicAddr, 1000)

	_, err := f.appointment.Create(callerCtx(patientAddr), clinicAddr, &dto.CreateAppointmentRequest{
		Description: "Followup",
		Date:        "2026-09-02",
		TimeSlot:    "11:00",
	}, 1000)
	if !errors.Is(err, entity.ErrDuplicateKey) {
		t.Fatalf("second booking at 1000: got %v, want ErrDuplicateKey", err)
	}

	// A fresh timestamp succeeds.
	f.book(t, patientAddr, clinicAddr, 1001)
}

func TestCreateAppointmentValidation(t *testing.T) {
	f := newFixture()
	f.seedClinic(t, clinicAddr)
	f.seedPatient(t, patientAddr)

	tests := []struct {
		name string
		req  dto.CreateAppointmentRequest
	}{
		{"empty description", dto.CreateAppointmentRequest{Description: "", Date: "2026-09-01", TimeSlot: "10:00"}},
		{"empty date", dto.CreateAppointmentRequest{Description: "Checkup", Date: "", TimeSlot: "10:00"}},
		{"empty time", dto.CreateAppointmentRequest{Description: "Checkup", Date: "2026-09-01", TimeSlot: ""}},
		{"oversized description", dto.CreateAppointmentRequest{Description: strings.Repeat("x", 256), Date: "2026-09-01", TimeSlot: "10:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.appointment.Create(callerCtx(patientAddr), clinicAddr, &tt.req, 2000)
			if !errors.Is(err, entity.ErrInvalidData) {
				t.Fatalf("got %v, want ErrInvalidData", err)
			}
		})
	}
}

// A party registered as both patient and clinic under one address may not
// book with itself.
func TestSelfBookingRejected(t *testing.T) {
	f := newFixture()
	f.seedClinic(t, "0xboth")
	f.seedPatient(t, "0xboth")

	_, err := f.appointment.Create(callerCtx("0xboth"), "0xboth", &dto.CreateAppointmentRequest{
		Description: "Checkup",
		Date:        "2026-09-01",
		TimeSlot:    "10:00",
	}, 1000)
	if !errors.Is(err, entity.ErrInvalidParty) {
		t.Fatalf("self booking: got %v, want ErrInvalidParty", err)
	}
}

func TestCancelAppointment(t *testing.T) {
	f := newFixture()
	f.seedClinic(t, clinicAddr)
	f.seedPatient(t, patientAddr)
	f.book(t, patientAddr, clinicAddr, 1000)

	// Only the clinic's owning identity may cancel.
	if err := f.appointment.Cancel(callerCtx(patientAddr), clinicAddr, 1000); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("patient cancel: got %v, want ErrUnauthorized", err)
	}

	if err := f.appointment.Cancel(callerCtx(clinicAddr), clinicAddr, 1000); err != nil {
		t.Fatalf("clinic cancel: %v", err)
	}

	appt, err := f.appointment.Get(callerCtx(clinicAddr), clinicAddr, 1000)
	if err != nil {
		t.Fatalf("get appointment: %v", err)
	}
	if appt.Status != "cancelled" {
		t.Fatalf("status after cancel = %s, want cancelled", appt.Status)
	}

	// Cancelled is terminal.
	if err := f.appointment.Cancel(callerCtx(clinicAddr), clinicAddr, 1000); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("second cancel: got %v, want ErrInvalidTransition", err)
	}

	// And cannot be paid.
	f.deposit(t, patientAddr, 50)
	if _, err := f.appointment.Pay(callerCtx(patientAddr), clinicAddr, 1000, 50); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("pay after cancel: got %v, want ErrInvalidTransition", err)
	}
}

func TestCancelConfirmedAppointment(t *testing.T) {
	f := newFixture()
	f.seedClinic(t, clinicAddr)
	f.seedPatient(t, patientAddr)
	f.book(t, patientAddr, clinicAddr, 1000)
	f.deposit(t, patientAddr, 50)

	if _, err := f.appointment.Pay(callerCtx(patientAddr), clinicAddr, 1000, 50); err != nil {
		t.Fatalf("pay: %v", err)
	}
	if err := f.appointment.Cancel(callerCtx(clinicAddr), clinicAddr, 1000); err != nil {
		t.Fatalf("cancel confirmed appointment: %v", err)
	}
}

func TestPayAppointmentInsufficientFunds(t *testing.T) {
	f := newFixture()
	f.seedClinic(t, clinicAddr)
	f.seedPatient(t, patientAddr)
	f.book(t, patientAddr, clinicAddr, 1000)
	f.deposit(t, patientAddr, 30)

	_, err := f.appointment.Pay(callerCtx(patientAddr), clinicAddr, 1000, 50)
	if !errors.Is(err, entity.ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}

	// The failed payment left everything untouched.
	patient, _ := f.registry.GetPatient(callerCtx(patientAddr), patientAddr)
	if patient.Balance != 30 {
		t.Fatalf("balance after failed pay = %d, want 30", patient.Balance)
	}
	appt, _ := f.appointment.Get(callerCtx(patientAddr), clinicAddr, 1000)
	if appt.Status != "pending" {
		t.Fatalf("status after failed pay = %s, want pending", appt.Status)
	}
}

func TestGetAppointmentNotFound(t *testing.T) {
	f := newFixture()
	f.seedClinic(t, clinicAddr)

	_, err := f.appointment.Get(callerCtx(clinicAddr), clinicAddr, 999)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestListAppointments(t *testing.T) {
	f := newFixture()
	f.seedClinic(t, clinicAddr)
	f.seedPatient(t, patientAddr)
	f.seedPatient(t, "0xother")

	f.book(t, patientAddr, clinicAddr, 1000)
	f.book(t, patientAddr, clinicAddr, 1001)
	f.book(t, "0xother", clinicAddr, 1002)

	all, err := f.appointment.ListForClinic(callerCtx(clinicAddr), clinicAddr)
	if err != nil {
		t.Fatalf("list for clinic: %v", err)
	}
	if all.Total != 3 {
		t.Fatalf("clinic snapshot total = %d, want 3", all.Total)
	}

	mine, err := f.appointment.ListForPatient(callerCtx(patientAddr), patientAddr, clinicAddr)
	if err != nil {
		t.Fatalf("list for patient: %v", err)
	}
	if mine.Total != 2 {
		t.Fatalf("patient filter total = %d, want 2", mine.Total)
	}
	for _, appt := range mine.Appointments {
		if appt.PatientAddress != patientAddr {
			t.Fatalf("filtered snapshot contains foreign appointment: %+v", appt)
		}
	}
}
