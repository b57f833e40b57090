package service

import (
	"context"
	"fmt"

	"fmtrack/internal/modules/catalog/domain"
	catalogout "fmtrack/internal/modules/catalog/port/out"
	apperrors "fmtrack/internal/platform/errors"
)

type CatalogService struct {
	store catalogout.ItemStore
}

func NewCatalogService(store catalogout.ItemStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) List(ctx context.Context, category string) ([]domain.Item, error) {
	return s.store.List(ctx, category)
}

func (s *CatalogService) FindByArtNr(ctx context.Context, artNr int) (domain.Item, error) {
	return s.store.FindByArtNr(ctx, artNr)
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.store.Categories(ctx)
}

// Import validates and writes a batch of items. Rows without a name or
// category are rejected before anything is written.
func (s *CatalogService) Import(ctx context.Context, items []domain.Item) (int, error) {
	for i, item := range items {
		if item.Name == "" || item.Category == "" {
			return 0, fmt.Errorf("import row %d missing name or category: %w", i, apperrors.ErrInvalidInput)
		}
	}
	if err := s.store.UpsertBatch(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}
