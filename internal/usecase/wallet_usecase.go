package usecase

import (
	"context"
	"errors"
	"fmt"

	"medical-escrow-ledger/internal/delivery/dto"
	"medical-escrow-ledger/internal/delivery/http/middleware"
	"medical-escrow-ledger/internal/domain/entity"
	"medical-escrow-ledger/internal/domain/repository"
	"medical-escrow-ledger/internal/service"

	"github.com/sirupsen/logrus"
)

// WalletUsecase exposes the escrow primitives over any entity's wallet.
// Every operation requires the caller to be the wallet's owner; value enters
// and leaves the system only through the host transfer primitive.
type WalletUsecase interface {
	Deposit(ctx context.Context, req *dto.DepositRequest) (*dto.WalletResponse, error)
	Pay(ctx context.Context, req *dto.PayRequest) (*dto.WalletResponse, error)
	Withdraw(ctx context.Context, req *dto.WithdrawRequest) (*dto.WalletResponse, error)
}

type walletUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	clinicRepo   repository.ClinicRepository
	hospitalRepo repository.HospitalRepository
	transfer     service.ValueTransfer
}

func NewWalletUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	clinicRepo repository.ClinicRepository,
	hospitalRepo repository.HospitalRepository,
	transfer service.ValueTransfer,
) WalletUsecase {
	return &walletUsecase{
		log:          log,
		patientRepo:  patientRepo,
		clinicRepo:   clinicRepo,
		hospitalRepo: hospitalRepo,
		transfer:     transfer,
	}
}

// resolveWallet finds the escrow wallet owned by address across every entity
// kind. Each entity owns exactly one wallet, keyed by its address.
func (u *walletUsecase) resolveWallet(address string) (*entity.Wallet, error) {
	if patient, err := u.patientRepo.FindByAddress(address); err == nil {
		return patient.Wallet, nil
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	if clinic, err := u.clinicRepo.FindByAddress(address); err == nil {
		return clinic.Wallet, nil
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	if hospital, err := u.hospitalRepo.FindByAddress(address); err == nil {
		return hospital.Wallet, nil
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	return nil, fmt.Errorf("wallet %s: %w", address, entity.ErrNotFound)
}

// Deposit accepts externally tendered value into the owner's escrow.
func (u *walletUsecase) Deposit(ctx context.Context, req *dto.DepositRequest) (*dto.WalletResponse, error) {
	caller, ok := middleware.GetCallerAddressFromContext(ctx)
	if !ok {
		return nil, ErrNoCaller
	}

	if caller != req.Owner {
		u.log.Warnf("Deposit rejected: caller %s is not owner %s", caller, req.Owner)
		return nil, fmt.Errorf("deposit: %w", entity.ErrUnauthorized)
	}

	wallet, err := u.resolveWallet(req.Owner)
	if err != nil {
		return nil, err
	}

	if err := u.transfer.TransferIn(req.Owner, req.Amount); err != nil {
		return nil, err
	}
	wallet.Credit(req.Amount)

	u.log.Infof("Deposit: owner=%s, amount=%d, balance=%d", req.Owner, req.Amount, wallet.Balance)
	return &dto.WalletResponse{Owner: wallet.Owner, Balance: wallet.Balance}, nil
}

// Pay debits the owner's escrow and settles the amount directly to the
// destination address. The destination's stored wallet, if any, is never
// credited.
func (u *walletUsecase) Pay(ctx context.Context, req *dto.PayRequest) (*dto.WalletResponse, error) {
	caller, ok := middleware.GetCallerAddressFromContext(ctx)
	if !ok {
		return nil, ErrNoCaller
	}

	if caller != req.Owner {
		u.log.Warnf("Payment rejected: caller %s is not owner %s", caller, req.Owner)
		return nil, fmt.Errorf("pay: %w", entity.ErrUnauthorized)
	}

	wallet, err := u.resolveWallet(req.Owner)
	if err != nil {
		return nil, err
	}

	if req.Amount > wallet.Balance {
		return nil, fmt.Errorf("pay: %w", entity.ErrInsufficientFunds)
	}

	if err := wallet.Debit(req.Amount); err != nil {
		return nil, err
	}
	if err := u.transfer.TransferOut(req.Destination, req.Amount); err != nil {
		return nil, err
	}

	u.log.Infof("Payment: owner=%s, destination=%s, amount=%d", req.Owner, req.Destination, req.Amount)
	return &dto.WalletResponse{Owner: wallet.Owner, Balance: wallet.Balance}, nil
}

// Withdraw debits the owner's escrow and settles the amount externally back
// to the owning address.
func (u *walletUsecase) Withdraw(ctx context.Context, req *dto.WithdrawRequest) (*dto.WalletResponse, error) {
	caller, ok := middleware.GetCallerAddressFromContext(ctx)
	if !ok {
		return nil, ErrNoCaller
	}

	if caller != req.Owner {
		u.log.Warnf("Withdrawal rejected: caller %s is not owner %s", caller, req.Owner)
		return nil, fmt.Errorf("withdraw: %w", entity.ErrUnauthorized)
	}

	wallet, err := u.resolveWallet(req.Owner)
	if err != nil {
		return nil, err
	}

	if req.Amount > wallet.Balance {
		return nil, fmt.Errorf("withdraw: %w", entity.ErrInsufficientFunds)
	}

	if err := wallet.Debit(req.Amount); err != nil {
		return nil, err
	}
	if err := u.transfer.TransferOut(wallet.Owner, req.Amount); err != nil {
		return nil, err
	}

	u.log.Infof("Withdrawal: owner=%s, amount=%d, balance=%d", req.Owner, req.Amount, wallet.Balance)
	return &dto.WalletResponse{Owner: wallet.Owner, Balance: wallet.Balance}, nil
}
