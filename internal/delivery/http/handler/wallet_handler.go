package handler

import (
	"encoding/json"
	"net/http"

	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/usecase"
	"medical-escrow-ledger/pkg/response"
	"medical-escrow-ledger/pkg/validator"
)

type WalletHandler struct {
	walletUsecase usecase.WalletUsecase
	validator     *validator.CustomValidator
}

func NewWalletHandler(walletUsecase usecase.WalletUsecase, validator *validator.CustomValidator) *WalletHandler {
	return &WalletHandler{
		walletUsecase: walletUsecase,
		validator:     validator,
	}
}

func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	wallet, err := h.walletUsecase.Deposit(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Deposit successful", wallet)
}

func (h *WalletHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req dto.PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	wallet, err := h.walletUsecase.Pay(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payment successful", wallet)
}

func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	wallet, err := h.walletUsecase.Withdraw(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Withdrawal successful", wallet)
}
