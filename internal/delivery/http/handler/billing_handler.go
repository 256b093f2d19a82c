package handler

import (
	"encoding/json"
	"net/http"

	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/service"
	"medical-escrow-ledger/internal/usecase"
	"medical-escrow-ledger/pkg/response"
	"medical-escrow-ledger/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
	clock          service.Clock
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator, clock service.Clock) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
		clock:          clock,
	}
}

func (h *BillingHandler) GenerateBill(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospitalAddr := mux.Vars(r)["address"]
	bill, err := h.billingUsecase.GenerateBill(r.Context(), hospitalAddr, &req, h.clock.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Bill issued successfully", bill)
}

func (h *BillingHandler) PayBill(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	billID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bill id", nil)
		return
	}

	var req dto.PayBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	balance, err := h.billingUsecase.PayBill(r.Context(), vars["address"], billID, &req, h.clock.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bill paid successfully", balance)
}

func (h *BillingHandler) WithdrawAll(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospitalAddr := mux.Vars(r)["address"]
	result, err := h.billingUsecase.WithdrawAll(r.Context(), hospitalAddr, req.CapID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Withdrawal successful", result)
}

func (h *BillingHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	hospitalAddr := mux.Vars(r)["address"]

	balance, err := h.billingUsecase.GetBalance(r.Context(), hospitalAddr)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Balance retrieved successfully", balance)
}

func (h *BillingHandler) GetBillCharge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	billID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bill id", nil)
		return
	}

	charge, err := h.billingUsecase.GetBillCharge(r.Context(), vars["address"], vars["payer"], billID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bill charge retrieved successfully", charge)
}
