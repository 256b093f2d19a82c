package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/usecase"
	"medical-escrow-ledger/pkg/response"
	"medical-escrow-ledger/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.authUsecase.IssueToken(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrBadIssuerSecret) {
			response.Unauthorized(w, "Invalid issuer secret")
			return
		}
		response.InternalServerError(w, "Failed to issue token")
		return
	}

	response.Success(w, http.StatusOK, "Token issued successfully", token)
}

func (h *AuthHandler) RevokeToken(w http.ResponseWriter, r *http.Request) {
	if err := h.authUsecase.RevokeToken(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to revoke token")
		return
	}

	response.Success(w, http.StatusOK, "Token revoked successfully", nil)
}
