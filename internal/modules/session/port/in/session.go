package in

import (
	"context"

	"fmtrack/internal/modules/session/dto"
)

type Usecase interface {
	Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error)
	SaveTo(ctx context.Context, path string) (dto.SaveOutput, error)
	Load(ctx context.Context, input dto.LoadInput) (dto.LoadOutput, error)
	NewSession(ctx context.Context, input dto.NewSessionInput) (dto.NewSessionOutput, error)
	ListSaved(ctx context.Context) ([]dto.SessionSummary, error)
	Delete(ctx context.Context, path string) error
	Exists(filename string) bool
}
