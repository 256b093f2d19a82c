package entity

// Wallet is an escrow balance owned by exactly one entity. The balance is an
// unsigned 64-bit integer and can never go negative; debits that would
// overdraw fail before any mutation.
type Wallet struct {
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance"`
}

func NewWallet(owner string) *Wallet {
	return &Wallet{Owner: owner}
}

// Credit adds amount to the balance. There is no upper bound other than the
// integer range.
func (w *Wallet) Credit(amount uint64) {
	w.Balance += amount
}

// Debit removes amount from the balance, failing with ErrInsufficientFunds
// when the balance is lower than amount.
func (w *Wallet) Debit(amount uint64) error {
	if amount > w.Balance {
		return ErrInsufficientFunds
	}
	w.Balance -= amount
	return nil
}

// Drain zeroes the balance and returns the prior amount.
func (w *Wallet) Drain() uint64 {
	amount := w.Balance
	w.Balance = 0
	return amount
}
