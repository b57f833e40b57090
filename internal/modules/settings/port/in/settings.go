package in

import (
	"context"

	"fmtrack/internal/modules/settings/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.SettingRow, error)
	Set(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string) (any, error)
	ApplyPreset(ctx context.Context, name string) error
	Presets(ctx context.Context) ([]dto.PresetOutput, error)
}
