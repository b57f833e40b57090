package in

import (
	"context"

	"fmtrack/internal/modules/roi/dto"
)

type Usecase interface {
	AddInvestment(ctx context.Context, input dto.InvestmentInput) (dto.InvestmentRow, error)
	AddRevenue(ctx context.Context, input dto.RevenueInput) error
	List(ctx context.Context) ([]dto.InvestmentRow, error)
	Summary(ctx context.Context) (dto.SummaryOutput, error)
}
