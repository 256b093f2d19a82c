package entity

// SettlementDirection marks which way value crossed the system boundary.
type SettlementDirection uint8

const (
	SettlementIn SettlementDirection = iota
	SettlementOut
)

func (d SettlementDirection) String() string {
	if d == SettlementIn {
		return "in"
	}
	return "out"
}

// Settlement records one external value movement performed by the host
// transfer primitive. The journal of settlements is append-only.
type Settlement struct {
	Direction SettlementDirection `json:"direction"`
	Party     string              `json:"party"`
	Amount    uint64              `json:"amount"`
}
