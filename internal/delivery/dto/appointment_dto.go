package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	Description string `json:"description" validate:"required,max=255"`
	Date        string `json:"date" validate:"required,max=255"`
	TimeSlot    string `json:"time_slot" validate:"required,max=255"`
}

type PayAppointmentRequest struct {
	Amount uint64 `json:"amount" validate:"required,gte=1"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID `json:"id"`
	PatientAddress string    `json:"patient_address"`
	ClinicAddress  string    `json:"clinic_address"`
	Description    string    `json:"description"`
	Date           string    `json:"date"`
	TimeSlot       string    `json:"time_slot"`
	CreatedAt      uint64    `json:"created_at"`
	Status         string    `json:"status"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
