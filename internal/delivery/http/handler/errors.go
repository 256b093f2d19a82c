package handler

import (
	"errors"
	"net/http"

	"medical-escrow-ledger/internal/domain/entity"
	"medical-escrow-ledger/pkg/response"
)

// writeDomainError maps the domain error taxonomy onto HTTP statuses. Every
// failure is a whole-call abort; the message carries the wrapped context.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrUnauthorized):
		response.Forbidden(w, err.Error())
	case errors.Is(err, entity.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, entity.ErrDuplicateKey),
		errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, entity.ErrMismatch):
		response.Conflict(w, err.Error())
	case errors.Is(err, entity.ErrInvalidData),
		errors.Is(err, entity.ErrInvalidParty),
		errors.Is(err, entity.ErrInvalidAmount),
		errors.Is(err, entity.ErrTimeWindow):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, entity.ErrInsufficientFunds):
		response.Error(w, http.StatusPaymentRequired, err.Error(), nil)
	default:
		response.InternalServerError(w, "")
	}
}
