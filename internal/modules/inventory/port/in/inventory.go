package in

import (
	"context"

	"fmtrack/internal/modules/inventory/dto"
)

type Usecase interface {
	Upsert(ctx context.Context, input dto.ItemInput) error
	List(ctx context.Context) ([]dto.ItemRow, error)
	RecordOilSale(ctx context.Context, volume float64) error
	OilCap(ctx context.Context) (dto.OilCapOutput, error)
}
