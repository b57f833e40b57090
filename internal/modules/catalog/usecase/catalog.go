package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"fmtrack/internal/modules/catalog/domain"
	"fmtrack/internal/modules/catalog/dto"
	catalogin "fmtrack/internal/modules/catalog/port/in"
	"fmtrack/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, category string) ([]dto.ItemRow, error) {
	items, err := i.svc.List(ctx, category)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, toRow(item))
	}
	return rows, nil
}

func (i *Interactor) Show(ctx context.Context, artNr int) (dto.ItemRow, error) {
	item, err := i.svc.FindByArtNr(ctx, artNr)
	if err != nil {
		return dto.ItemRow{}, err
	}
	return toRow(item), nil
}

func (i *Interactor) Categories(ctx context.Context) ([]string, error) {
	return i.svc.Categories(ctx)
}

func (i *Interactor) ImportRows(ctx context.Context, raw json.RawMessage) (dto.ImportOutput, error) {
	var rows []dto.ItemRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return dto.ImportOutput{}, fmt.Errorf("decode import rows: %w", err)
	}
	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.Item{
			ArtNr:           row.ArtNr,
			Name:            row.Name,
			Category:        row.Category,
			BuyPrice:        row.BuyPrice,
			CurrentBuyPrice: row.CurrentBuyPrice,
			SellPrice:       row.SellPrice,
			CanPurchase:     row.CanPurchase,
			CanSell:         row.CanSell,
			Notes:           row.Notes,
		})
	}
	count, err := i.svc.Import(ctx, items)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	return dto.ImportOutput{Imported: count}, nil
}

func toRow(item domain.Item) dto.ItemRow {
	return dto.ItemRow{
		ArtNr:           item.ArtNr,
		Name:            item.Name,
		Category:        item.Category,
		BuyPrice:        item.BuyPrice,
		CurrentBuyPrice: item.CurrentBuyPrice,
		SellPrice:       item.SellPrice,
		CanPurchase:     item.CanPurchase,
		CanSell:         item.CanSell,
		Notes:           item.Notes,
	}
}
