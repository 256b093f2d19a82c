package entity

import (
	"github.com/google/uuid"
)

// Hospital owns one escrow wallet, a two-level bill table keyed by payer
// address then bill id, and the list of every bill id it has issued. Inner
// payer tables are created lazily on first bill.
type Hospital struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	Wallet  *Wallet                        `json:"wallet"`
	Bills   map[string]map[uuid.UUID]*Bill `json:"bills"`
	BillIDs []uuid.UUID                    `json:"bill_ids"`
}

func NewHospital(address, name, phone, email string) *Hospital {
	return &Hospital{
		Address: address,
		Name:    name,
		Phone:   phone,
		Email:   email,
		Wallet:  NewWallet(address),
		Bills:   make(map[string]map[uuid.UUID]*Bill),
	}
}

// InsertBill files the bill under payer, creating the inner table if absent,
// and records the id for enumeration.
func (h *Hospital) InsertBill(payer string, bill *Bill) {
	inner, ok := h.Bills[payer]
	if !ok {
		inner = make(map[uuid.UUID]*Bill)
		h.Bills[payer] = inner
	}
	inner[bill.ID] = bill
	h.BillIDs = append(h.BillIDs, bill.ID)
}

// FindBill looks up a bill without removing it.
func (h *Hospital) FindBill(payer string, id uuid.UUID) (*Bill, bool) {
	inner, ok := h.Bills[payer]
	if !ok {
		return nil, false
	}
	bill, ok := inner[id]
	return bill, ok
}

// RemoveBill deletes the bill from the payer's table. The issued-id list is
// append-only and keeps the id.
func (h *Hospital) RemoveBill(payer string, id uuid.UUID) {
	if inner, ok := h.Bills[payer]; ok {
		delete(inner, id)
	}
}

// HospitalCap is the capability token minted once with its hospital. Holding
// a cap whose HospitalAddress matches is the only authority for issuing
// bills and withdrawing; caps are never reassigned.
type HospitalCap struct {
	ID              uuid.UUID `json:"id"`
	HospitalAddress string    `json:"hospital_address"`
}
