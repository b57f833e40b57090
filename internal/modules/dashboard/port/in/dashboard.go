package in

import (
	"context"

	"fmtrack/internal/modules/dashboard/dto"
)

type Usecase interface {
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	Refresh(ctx context.Context) (dto.SummaryOutput, error)
}
