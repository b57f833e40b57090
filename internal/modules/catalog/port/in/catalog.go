package in

import (
	"context"
	"encoding/json"

	"fmtrack/internal/modules/catalog/dto"
)

type Usecase interface {
	List(ctx context.Context, category string) ([]dto.ItemRow, error)
	Show(ctx context.Context, artNr int) (dto.ItemRow, error)
	Categories(ctx context.Context) ([]string, error)
	// ImportRows ingests importer output: a JSON array of item rows.
	ImportRows(ctx context.Context, raw json.RawMessage) (dto.ImportOutput, error)
}
