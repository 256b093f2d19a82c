package service

import (
	"medical-escrow-ledger/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// ValueTransfer is the host value-movement primitive. TransferIn accepts
// externally tendered value into the system; TransferOut settles value out
// to an external address immediately. The ledger core calls it only after
// every validation has passed, so a recorded settlement is always final.
type ValueTransfer interface {
	TransferIn(from string, amount uint64) error
	TransferOut(to string, amount uint64) error
}

// SettlementService is the default ValueTransfer: an append-only journal of
// every movement across the system boundary. The journal is what makes the
// balance-conservation properties observable.
type SettlementService struct {
	log     *logrus.Logger
	journal []entity.Settlement
}

func NewSettlementService(log *logrus.Logger) *SettlementService {
	return &SettlementService{log: log}
}

func (s *SettlementService) TransferIn(from string, amount uint64) error {
	s.journal = append(s.journal, entity.Settlement{
		Direction: entity.SettlementIn,
		Party:     from,
		Amount:    amount,
	})
	s.log.Infof("Settlement in: from=%s, amount=%d", from, amount)
	return nil
}

func (s *SettlementService) TransferOut(to string, amount uint64) error {
	s.journal = append(s.journal, entity.Settlement{
		Direction: entity.SettlementOut,
		Party:     to,
		Amount:    amount,
	})
	s.log.Infof("Settlement out: to=%s, amount=%d", to, amount)
	return nil
}

// Journal returns a snapshot copy of all recorded settlements.
func (s *SettlementService) Journal() []entity.Settlement {
	out := make([]entity.Settlement, len(s.journal))
	copy(out, s.journal)
	return out
}
