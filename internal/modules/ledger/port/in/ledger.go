package in

import (
	"context"

	"fmtrack/internal/modules/ledger/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.TransactionInput) error
	List(ctx context.Context) ([]dto.TransactionRow, error)
	Remove(ctx context.Context, index int) error
	Balances(ctx context.Context) (dto.BalancesOutput, error)
}
