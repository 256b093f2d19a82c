package converter

import (
	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
func AppointmentToResponse(appt *entity.Appointment) *dto.AppointmentResponse {
	if appt == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:             appt.ID,
		PatientAddress: appt.PatientAddress,
		ClinicAddress:  appt.ClinicAddress,
		Description:    appt.Description,
		Date:           appt.Date,
		TimeSlot:       appt.TimeSlot,
		CreatedAt:      appt.CreatedAt,
		Status:         appt.Status.String(),
	}
}

// AppointmentsToResponses converts a snapshot of appointments.
func AppointmentsToResponses(appts []*entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		if resp := AppointmentToResponse(appt); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
