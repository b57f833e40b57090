package in

import (
	"context"

	"fmtrack/internal/modules/movement/dto"
)

type Usecase interface {
	RecordHauling(ctx context.Context, input dto.HaulingInput) error
	RecordProcessing(ctx context.Context, input dto.ProcessingInput) error
	List(ctx context.Context) (dto.LogOutput, error)
	Totals(ctx context.Context) (dto.TotalsOutput, error)
}
