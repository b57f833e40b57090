package usecase

import (
	"context"

	"fmtrack/internal/modules/ledger/domain"
	"fmtrack/internal/modules/ledger/dto"
	ledgerin "fmtrack/internal/modules/ledger/port/in"
	"fmtrack/internal/modules/ledger/service"
	apperrors "fmtrack/internal/platform/errors"
)

type Interactor struct {
	svc *service.LedgerService
}

func NewInteractor(svc *service.LedgerService) ledgerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(_ context.Context, input dto.TransactionInput) error {
	if len(input.Cells) == 0 {
		return apperrors.ErrInvalidInput
	}
	tx := make(domain.Transaction, len(input.Cells))
	for k, v := range input.Cells {
		tx[k] = v
	}
	i.svc.Add(tx)
	return nil
}

func (i *Interactor) List(_ context.Context) ([]dto.TransactionRow, error) {
	txs := i.svc.Transactions()
	rows := make([]dto.TransactionRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, dto.TransactionRow{Cells: tx})
	}
	return rows, nil
}

func (i *Interactor) Remove(_ context.Context, index int) error {
	return i.svc.Remove(index)
}

func (i *Interactor) Balances(_ context.Context) (dto.BalancesOutput, error) {
	personal, company := i.svc.Balances()
	return dto.BalancesOutput{Personal: personal, Company: company}, nil
}
