package in

import (
	"context"

	"fmtrack/internal/modules/session/dto"
	sessionin "fmtrack/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Save(ctx context.Context, name string) (dto.SaveOutput, error) {
	return h.usecase.Save(ctx, dto.SaveInput{Name: name})
}

func (h CLIHandler) SaveTo(ctx context.Context, path string) (dto.SaveOutput, error) {
	return h.usecase.SaveTo(ctx, path)
}

func (h CLIHandler) Load(ctx context.Context, path string) (dto.LoadOutput, error) {
	return h.usecase.Load(ctx, dto.LoadInput{Path: path})
}

func (h CLIHandler) NewSession(ctx context.Context, autosave bool) (dto.NewSessionOutput, error) {
	return h.usecase.NewSession(ctx, dto.NewSessionInput{Autosave: autosave})
}

func (h CLIHandler) ListSaved(ctx context.Context) ([]dto.SessionSummary, error) {
	return h.usecase.ListSaved(ctx)
}

func (h CLIHandler) Delete(ctx context.Context, path string) error {
	return h.usecase.Delete(ctx, path)
}
