package usecase

import (
	"context"
	"fmt"

	"fmtrack/internal/modules/inventory/domain"
	"fmtrack/internal/modules/inventory/dto"
	inventoryin "fmtrack/internal/modules/inventory/port/in"
	"fmtrack/internal/modules/inventory/service"
	apperrors "fmtrack/internal/platform/errors"
)

type Interactor struct {
	svc *service.InventoryService
}

func NewInteractor(svc *service.InventoryService) inventoryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Upsert(_ context.Context, input dto.ItemInput) error {
	if input.Name == "" {
		return fmt.Errorf("item name: %w", apperrors.ErrInvalidInput)
	}
	i.svc.Upsert(domain.Item{
		Name:     input.Name,
		Category: input.Category,
		Location: input.Location,
		Quantity: input.Quantity,
	})
	return nil
}

func (i *Interactor) List(_ context.Context) ([]dto.ItemRow, error) {
	items := i.svc.Items()
	rows := make([]dto.ItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, dto.ItemRow{
			Name:     item.Name,
			Category: item.Category,
			Location: item.Location,
			Quantity: item.Quantity,
		})
	}
	return rows, nil
}

func (i *Interactor) RecordOilSale(_ context.Context, volume float64) error {
	if volume <= 0 {
		return fmt.Errorf("oil volume must be positive: %w", apperrors.ErrInvalidInput)
	}
	i.svc.RecordOilSale(volume)
	return nil
}

func (i *Interactor) OilCap(_ context.Context) (dto.OilCapOutput, error) {
	sold, cap, enabled := i.svc.OilCap()
	return dto.OilCapOutput{Enabled: enabled, CapAmount: cap, LifetimeSold: sold}, nil
}
