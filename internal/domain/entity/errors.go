package entity

import "errors"

// Domain error taxonomy. Every failed operation aborts with exactly one of
// these, wrapped with call-site context; no partial effects are ever visible.
var (
	ErrUnauthorized      = errors.New("caller lacks the required role, ownership, or capability")
	ErrInvalidParty      = errors.New("patient and clinic addresses coincide")
	ErrDuplicateKey      = errors.New("insertion key already present")
	ErrNotFound          = errors.New("record not found")
	ErrInvalidAmount     = errors.New("tendered amount does not match the required amount")
	ErrInsufficientFunds = errors.New("balance is lower than the requested amount")
	ErrInvalidData       = errors.New("text field is empty or exceeds the length limit")
	ErrMismatch          = errors.New("cross-reference check failed")
	ErrTimeWindow        = errors.New("time-based precondition not met")
	ErrInvalidTransition = errors.New("state transition not permitted")
)
