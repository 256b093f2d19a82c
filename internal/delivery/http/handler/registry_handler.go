package handler

import (
	"encoding/json"
	"net/http"

	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/domain/entity"
	"medical-escrow-ledger/internal/usecase"
	"medical-escrow-ledger/pkg/response"
	"medical-escrow-ledger/pkg/validator"

	"github.com/gorilla/mux"
)

type RegistryHandler struct {
	registryUsecase usecase.RegistryUsecase
	validator       *validator.CustomValidator
}

func NewRegistryHandler(registryUsecase usecase.RegistryUsecase, validator *validator.CustomValidator) *RegistryHandler {
	return &RegistryHandler{
		registryUsecase: registryUsecase,
		validator:       validator,
	}
}

func (h *RegistryHandler) CreateClinic(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.registryUsecase.CreateClinic(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Clinic created successfully", clinic)
}

func (h *RegistryHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.registryUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *RegistryHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.registryUsecase.CreateHospital(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Hospital created successfully", hospital)
}

func (h *RegistryHandler) GrantRole(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	role, ok := entity.ParseRole(vars["role"])
	if !ok {
		response.Error(w, http.StatusBadRequest, "Unknown role", nil)
		return
	}

	var req dto.GrantRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.registryUsecase.GrantRole(r.Context(), role, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Role granted successfully", nil)
}

func (h *RegistryHandler) GetClinic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clinic, err := h.registryUsecase.GetClinic(r.Context(), vars["address"])
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Clinic retrieved successfully", clinic)
}

func (h *RegistryHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	patient, err := h.registryUsecase.GetPatient(r.Context(), vars["address"])
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *RegistryHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hospital, err := h.registryUsecase.GetHospital(r.Context(), vars["address"])
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}
