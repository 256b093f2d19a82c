package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateClinicRequest struct {
	Address  string `json:"address" validate:"required,max=255"`
	Name     string `json:"name" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,max=255"`
	Location string `json:"location" validate:"required,max=255"`
}

type CreatePatientRequest struct {
	Address string `json:"address" validate:"required,max=255"`
	Name    string `json:"name" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,max=255"`
}

type CreateHospitalRequest struct {
	Address string `json:"address" validate:"required,max=255"`
	Name    string `json:"name" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,max=255"`
}

type GrantRoleRequest struct {
	Address string `json:"address" validate:"required,max=255"`
}

// Response DTOs

type ClinicResponse struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Balance  uint64 `json:"balance"`
}

type PatientResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Balance uint64 `json:"balance"`
}

type HospitalResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Balance uint64 `json:"balance"`
}

// CreateHospitalResponse carries the capability token exactly once, to the
// creator; it is never retrievable again.
type CreateHospitalResponse struct {
	Hospital HospitalResponse `json:"hospital"`
	CapID    uuid.UUID        `json:"cap_id"`
}
