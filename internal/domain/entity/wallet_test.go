package entity

import (
	"errors"
	"testing"
)

func TestWalletCreditDebit(t *testing.T) {
	w := NewWallet("0xpatient")
	if w.Balance != 0 {
		t.Fatalf("new wallet balance = %d, want 0", w.Balance)
	}

	w.Credit(50)
	if w.Balance != 50 {
		t.Fatalf("balance after credit = %d, want 50", w.Balance)
	}

	if err := w.Debit(30); err != nil {
		t.Fatalf("debit within balance: %v", err)
	}
	if w.Balance != 20 {
		t.Fatalf("balance after debit = %d, want 20", w.Balance)
	}
}

func TestWalletDebitOverdraw(t *testing.T) {
	w := NewWallet("0xpatient")
	w.Credit(10)

	if err := w.Debit(11); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("overdraw: got %v, want ErrInsufficientFunds", err)
	}
	// Failed debit leaves the balance untouched.
	if w.Balance != 10 {
		t.Fatalf("balance after failed debit = %d, want 10", w.Balance)
	}
}

func TestWalletDrain(t *testing.T) {
	w := NewWallet("0xhospital")
	w.Credit(175)

	got := w.Drain()
	if got != 175 {
		t.Fatalf("Drain() = %d, want 175", got)
	}
	if w.Balance != 0 {
		t.Fatalf("balance after drain = %d, want 0", w.Balance)
	}

	if got := w.Drain(); got != 0 {
		t.Fatalf("second Drain() = %d, want 0", got)
	}
}

func TestValidateField(t *testing.T) {
	long := make([]byte, MaxFieldBytes+1)
	for i := range long {
		long[i] = 'a'
	}

	if err := ValidateField(""); !errors.Is(err, ErrInvalidData) {
		t.Errorf("empty field: got %v, want ErrInvalidData", err)
	}
	if err := ValidateField(string(long)); !errors.Is(err, ErrInvalidData) {
		t.Errorf("over-length field: got %v, want ErrInvalidData", err)
	}
	if err := ValidateField(string(long[:MaxFieldBytes])); err != nil {
		t.Errorf("field at the limit: %v", err)
	}
}
