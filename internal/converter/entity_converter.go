package converter

import (
	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/domain/entity"
)

func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	return &dto.ClinicResponse{
		Name:     clinic.Name,
		Address:  clinic.Address,
		Phone:    clinic.Phone,
		Email:    clinic.Email,
		Location: clinic.Location,
		Balance:  clinic.Wallet.Balance,
	}
}

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		Name:    patient.Name,
		Address: patient.Address,
		Phone:   patient.Phone,
		Email:   patient.Email,
		Balance: patient.Wallet.Balance,
	}
}

func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		Name:    hospital.Name,
		Address: hospital.Address,
		Phone:   hospital.Phone,
		Email:   hospital.Email,
		Balance: hospital.Wallet.Balance,
	}
}

func BillToResponse(bill *entity.Bill) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	return &dto.BillResponse{
		ID:         bill.ID,
		PatientRef: bill.PatientRef,
		Charges:    bill.Charges,
		DueAt:      bill.DueAt,
	}
}
