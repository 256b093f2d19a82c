package usecase

import (
	"context"
	"fmt"

	"medical-escrow-ledger/internal/converter"
	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/delivery/http/middleware"
	"medical-escrow-ledger/internal/domain/entity"
	"medical-escrow-ledger/internal/domain/repository"
	"medical-escrow-ledger/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BillingUsecase is the hospital billing ledger: capability-gated bill
// issuance, exact-amount payment after the due timestamp, and full
// withdrawal of the aggregate escrow.
//
// The time condition is deliberate and literal: a bill becomes payable only
// once its due timestamp has elapsed (due < now). Tests pin this behavior.
type BillingUsecase interface {
	GenerateBill(ctx context.Context, hospitalAddr string, req *dto.GenerateBillRequest, now uint64) (*dto.BillResponse, error)
	PayBill(ctx context.Context, hospitalAddr string, billID uuid.UUID, req *dto.PayBillRequest, now uint64) (*dto.BalanceResponse, error)
	WithdrawAll(ctx context.Context, hospitalAddr string, capID uuid.UUID) (*dto.WithdrawAllResponse, error)
	GetBalance(ctx context.Context, hospitalAddr string) (*dto.BalanceResponse, error)
	GetBillCharge(ctx context.Context, hospitalAddr, payer string, billID uuid.UUID) (*dto.ChargeResponse, error)
}

type billingUsecase struct {
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
	transfer     service.ValueTransfer
}

func NewBillingUsecase(
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	transfer service.ValueTransfer,
) BillingUsecase {
	return &billingUsecase{
		log:          log,
		hospitalRepo: hospitalRepo,
		transfer:     transfer,
	}
}

// checkCap verifies the presented capability exists and references the
// hospital. A cap that exists but points elsewhere is as unauthorized as a
// cap that does not exist.
func (u *billingUsecase) checkCap(capID uuid.UUID, hospitalAddr string) error {
	capability, err := u.hospitalRepo.FindCap(capID)
	if err != nil {
		return fmt.Errorf("capability check: %w", entity.ErrUnauthorized)
	}
	if capability.HospitalAddress != hospitalAddr {
		return fmt.Errorf("capability check: %w", entity.ErrUnauthorized)
	}
	return nil
}

// GenerateBill issues a bill against the payer, keyed by a fresh id, due at
// now + offset. The payer's inner table is created lazily.
func (u *billingUsecase) GenerateBill(ctx context.Context, hospitalAddr string, req *dto.GenerateBillRequest, now uint64) (*dto.BillResponse, error) {
	if _, ok := middleware.GetCallerAddressFromContext(ctx); !ok {
		return nil, ErrNoCaller
	}

	if err := u.checkCap(req.CapID, hospitalAddr); err != nil {
		u.log.Warnf("Bill issuance rejected for hospital %s: invalid capability", hospitalAddr)
		return nil, err
	}

	hospital, err := u.hospitalRepo.FindByAddress(hospitalAddr)
	if err != nil {
		return nil, err
	}

	if err := entity.ValidateFields(req.PatientRef, req.Payer); err != nil {
		return nil, fmt.Errorf("generate bill: %w", err)
	}

	bill := &entity.Bill{
		ID:         uuid.New(),
		PatientRef: req.PatientRef,
		Charges:    req.Charges,
		DueAt:      now + req.DueOffset,
	}
	hospital.InsertBill(req.Payer, bill)

	u.log.Infof("Bill issued: hospital=%s, payer=%s, id=%s, charges=%d, due=%d",
		hospitalAddr, req.Payer, bill.ID, bill.Charges, bill.DueAt)
	return converter.BillToResponse(bill), nil
}

// PayBill settles a bill from the caller's table. The tendered amount must
// equal the charge exactly and the due timestamp must have elapsed; only
// then is the bill removed and the value merged into the hospital's
// aggregate escrow. Every check runs before the first mutation.
func (u *billingUsecase) PayBill(ctx context.Context, hospitalAddr string, billID uuid.UUID, req *dto.PayBillRequest, now uint64) (*dto.BalanceResponse, error) {
	caller, ok := middleware.GetCallerAddressFromContext(ctx)
	if !ok {
		return nil, ErrNoCaller
	}

	hospital, err := u.hospitalRepo.FindByAddress(hospitalAddr)
	if err != nil {
		return nil, err
	}

	bill, found := hospital.FindBill(caller, billID)
	if !found {
		return nil, fmt.Errorf("bill %s for payer %s: %w", billID, caller, entity.ErrNotFound)
	}

	if bill.PatientRef != req.PatientRef {
		u.log.Warnf("Bill payment rejected: patient reference mismatch for bill %s", billID)
		return nil, fmt.Errorf("pay bill: %w", entity.ErrMismatch)
	}

	if req.Tendered != bill.Charges {
		u.log.Warnf("Bill payment rejected: tendered %d, charged %d", req.Tendered, bill.Charges)
		return nil, fmt.Errorf("pay bill: %w", entity.ErrInvalidAmount)
	}

	// Payable only after the due timestamp has elapsed.
	if bill.DueAt >= now {
		return nil, fmt.Errorf("pay bill before due timestamp %d: %w", bill.DueAt, entity.ErrTimeWindow)
	}

	if err := u.transfer.TransferIn(caller, req.Tendered); err != nil {
		return nil, err
	}
	hospital.RemoveBill(caller, billID)
	hospital.Wallet.Credit(req.Tendered)

	u.log.Infof("Bill paid: hospital=%s, payer=%s, id=%s, amount=%d", hospitalAddr, caller, billID, req.Tendered)
	return &dto.BalanceResponse{Address: hospital.Address, Balance: hospital.Wallet.Balance}, nil
}

// WithdrawAll zeroes the hospital escrow and settles the full prior amount
// externally to the hospital address.
func (u *billingUsecase) WithdrawAll(ctx context.Context, hospitalAddr string, capID uuid.UUID) (*dto.WithdrawAllResponse, error) {
	if _, ok := middleware.GetCallerAddressFromContext(ctx); !ok {
		return nil, ErrNoCaller
	}

	if err := u.checkCap(capID, hospitalAddr); err != nil {
		u.log.Warnf("Withdrawal rejected for hospital %s: invalid capability", hospitalAddr)
		return nil, err
	}

	hospital, err := u.hospitalRepo.FindByAddress(hospitalAddr)
	if err != nil {
		return nil, err
	}

	amount := hospital.Wallet.Drain()
	if err := u.transfer.TransferOut(hospital.Address, amount); err != nil {
		return nil, err
	}

	u.log.Infof("Hospital withdrawal: hospital=%s, amount=%d", hospitalAddr, amount)
	return &dto.WithdrawAllResponse{Address: hospital.Address, Amount: amount}, nil
}

func (u *billingUsecase) GetBalance(ctx context.Context, hospitalAddr string) (*dto.BalanceResponse, error) {
	hospital, err := u.hospitalRepo.FindByAddress(hospitalAddr)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{Address: hospital.Address, Balance: hospital.Wallet.Balance}, nil
}

func (u *billingUsecase) GetBillCharge(ctx context.Context, hospitalAddr, payer string, billID uuid.UUID) (*dto.ChargeResponse, error) {
	hospital, err := u.hospitalRepo.FindByAddress(hospitalAddr)
	if err != nil {
		return nil, err
	}

	bill, found := hospital.FindBill(payer, billID)
	if !found {
		return nil, fmt.Errorf("bill %s for payer %s: %w", billID, payer, entity.ErrNotFound)
	}

	return &dto.ChargeResponse{BillID: bill.ID, Charges: bill.Charges}, nil
}
