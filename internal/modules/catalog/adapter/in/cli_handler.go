package in

import (
	"context"
	"encoding/json"

	catalogdto "fmtrack/internal/modules/catalog/dto"
	catalogin "fmtrack/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, category string) ([]catalogdto.ItemRow, error) {
	return h.usecase.List(ctx, category)
}

func (h CLIHandler) Show(ctx context.Context, artNr int) (catalogdto.ItemRow, error) {
	return h.usecase.Show(ctx, artNr)
}

func (h CLIHandler) Import(ctx context.Context, raw json.RawMessage) (catalogdto.ImportOutput, error) {
	return h.usecase.ImportRows(ctx, raw)
}
