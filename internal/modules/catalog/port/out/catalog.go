package out

import (
	"context"

	"fmtrack/internal/modules/catalog/domain"
)

type ItemStore interface {
	Upsert(ctx context.Context, item domain.Item) error
	UpsertBatch(ctx context.Context, items []domain.Item) error
	List(ctx context.Context, category string) ([]domain.Item, error)
	FindByArtNr(ctx context.Context, artNr int) (domain.Item, error)
	Find(ctx context.Context, name, category string) (domain.Item, error)
	Categories(ctx context.Context) ([]string, error)
}
