package entity

import (
	"errors"
	"testing"
)

func TestAppointmentConfirm(t *testing.T) {
	appt := &Appointment{Status: AppointmentStatusPending}

	if err := appt.Confirm(); err != nil {
		t.Fatalf("confirming a pending appointment: %v", err)
	}
	if !appt.IsConfirmed() {
		t.Fatalf("status = %s, want confirmed", appt.Status)
	}

	// Confirmation happens exactly once.
	if err := appt.Confirm(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second confirm: got %v, want ErrInvalidTransition", err)
	}
}

func TestAppointmentCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  AppointmentStatus
		wantErr error
	}{
		{"pending can be cancelled", AppointmentStatusPending, nil},
		{"confirmed can be cancelled", AppointmentStatusConfirmed, nil},
		{"cancelled is terminal", AppointmentStatusCancelled, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := &Appointment{Status: tt.status}
			err := appt.Cancel()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Cancel() = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !appt.IsCancelled() {
				t.Fatalf("status = %s, want cancelled", appt.Status)
			}
		})
	}
}

func TestCancelledNeverConfirms(t *testing.T) {
	appt := &Appointment{Status: AppointmentStatusCancelled}
	if err := appt.Confirm(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("confirming a cancelled appointment: got %v, want ErrInvalidTransition", err)
	}
	if !appt.IsCancelled() {
		t.Fatalf("status moved off cancelled: %s", appt.Status)
	}
}

func TestAppointmentStatusString(t *testing.T) {
	if got := AppointmentStatusPending.String(); got != "pending" {
		t.Errorf("pending String() = %q", got)
	}
	if got := AppointmentStatusConfirmed.String(); got != "confirmed" {
		t.Errorf("confirmed String() = %q", got)
	}
	if got := AppointmentStatusCancelled.String(); got != "cancelled" {
		t.Errorf("cancelled String() = %q", got)
	}
}
