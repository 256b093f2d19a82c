package entity

import (
	"github.com/google/uuid"
)

// AppointmentStatus is a closed enum; transitions go through Confirm/Cancel
// only, never by assigning the field directly.
type AppointmentStatus uint8

const (
	AppointmentStatusPending AppointmentStatus = iota
	AppointmentStatusConfirmed
	AppointmentStatusCancelled
)

func (s AppointmentStatus) String() string {
	switch s {
	case AppointmentStatusPending:
		return "pending"
	case AppointmentStatusConfirmed:
		return "confirmed"
	case AppointmentStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// canTransitionTo encodes the full state machine:
// Pending -> Confirmed, {Pending, Confirmed} -> Cancelled, Cancelled terminal.
func (s AppointmentStatus) canTransitionTo(next AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending:
		return next == AppointmentStatusConfirmed || next == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return next == AppointmentStatusCancelled
	default:
		return false
	}
}

// Appointment is a booking record keyed by its creation timestamp within the
// owning clinic's table.
type Appointment struct {
	ID             uuid.UUID         `json:"id"`
	PatientAddress string            `json:"patient_address"`
	ClinicAddress  string            `json:"clinic_address"`
	Description    string            `json:"description"`
	Date           string            `json:"date"`
	TimeSlot       string            `json:"time_slot"`
	CreatedAt      uint64            `json:"created_at"`
	Status         AppointmentStatus `json:"status"`
}

func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Confirm moves the appointment to Confirmed. Only a Pending appointment can
// be confirmed; confirmation happens exactly once, on payment.
func (a *Appointment) Confirm() error {
	if !a.Status.canTransitionTo(AppointmentStatusConfirmed) {
		return ErrInvalidTransition
	}
	a.Status = AppointmentStatusConfirmed
	return nil
}

// Cancel moves the appointment to Cancelled. Cancelled is terminal: a second
// cancel fails with ErrInvalidTransition.
func (a *Appointment) Cancel() error {
	if !a.Status.canTransitionTo(AppointmentStatusCancelled) {
		return ErrInvalidTransition
	}
	a.Status = AppointmentStatusCancelled
	return nil
}
