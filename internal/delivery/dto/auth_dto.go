package dto

// Request DTOs

type TokenRequest struct {
	Address      string `json:"address" validate:"required,max=255"`
	IssuerSecret string `json:"issuer_secret" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
