package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/service"
	"medical-escrow-ledger/internal/usecase"
	"medical-escrow-ledger/pkg/response"
	"medical-escrow-ledger/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	clock              service.Clock
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator, clock service.Clock) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		clock:              clock,
	}
}

func parseKey(r *http.Request) (uint64, bool) {
	key, err := strconv.ParseUint(mux.Vars(r)["key"], 10, 64)
	return key, err == nil
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinicAddr := mux.Vars(r)["address"]
	appt, err := h.appointmentUsecase.Create(r.Context(), clinicAddr, &req, h.clock.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appt)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	key, ok := parseKey(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment key", nil)
		return
	}

	clinicAddr := mux.Vars(r)["address"]
	appt, err := h.appointmentUsecase.Get(r.Context(), clinicAddr, key)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appt)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	key, ok := parseKey(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment key", nil)
		return
	}

	clinicAddr := mux.Vars(r)["address"]
	if err := h.appointmentUsecase.Cancel(r.Context(), clinicAddr, key); err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

func (h *AppointmentHandler) PayAppointment(w http.ResponseWriter, r *http.Request) {
	key, ok := parseKey(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment key", nil)
		return
	}

	var req dto.PayAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinicAddr := mux.Vars(r)["address"]
	appt, err := h.appointmentUsecase.Pay(r.Context(), clinicAddr, key, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment paid successfully", appt)
}

// ListAppointments returns the clinic's snapshot, filtered by the patient
// query parameter when present.
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	clinicAddr := mux.Vars(r)["address"]

	var (
		list *dto.AppointmentListResponse
		err  error
	)
	if patient := r.URL.Query().Get("patient"); patient != "" {
		list, err = h.appointmentUsecase.ListForPatient(r.Context(), patient, clinicAddr)
	} else {
		list, err = h.appointmentUsecase.ListForClinic(r.Context(), clinicAddr)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", list)
}
