package entity

// Patient owns one escrow wallet; its address must be distinct from any
// clinic it books with.
type Patient struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	Wallet *Wallet `json:"wallet"`
}

func NewPatient(address, name, phone, email string) *Patient {
	return &Patient{
		Address: address,
		Name:    name,
		Phone:   phone,
		Email:   email,
		Wallet:  NewWallet(address),
	}
}
