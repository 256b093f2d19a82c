package dto

// Request DTOs

type DepositRequest struct {
	Owner  string `json:"owner" validate:"required,max=255"`
	Amount uint64 `json:"amount" validate:"required,gte=1"`
}

type PayRequest struct {
	Owner       string `json:"owner" validate:"required,max=255"`
	Amount      uint64 `json:"amount" validate:"required,gte=1"`
	Destination string `json:"destination" validate:"required,max=255"`
}

type WithdrawRequest struct {
	Owner  string `json:"owner" validate:"required,max=255"`
	Amount uint64 `json:"amount" validate:"required,gte=1"`
}

// Response DTOs

type WalletResponse struct {
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance"`
}
