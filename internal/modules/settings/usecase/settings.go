package usecase

import (
	"context"
	"fmt"
	"sort"

	"fmtrack/internal/modules/settings/domain"
	"fmtrack/internal/modules/settings/dto"
	settingsin "fmtrack/internal/modules/settings/port/in"
	"fmtrack/internal/modules/settings/service"
	apperrors "fmtrack/internal/platform/errors"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(_ context.Context) ([]dto.SettingRow, error) {
	values := i.svc.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([]dto.SettingRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, dto.SettingRow{Key: k, Value: values[k]})
	}
	return rows, nil
}

func (i *Interactor) Set(_ context.Context, key string, value any) error {
	return i.svc.Set(key, value)
}

func (i *Interactor) Get(_ context.Context, key string) (any, error) {
	v, ok := i.svc.Get(key)
	if !ok {
		return nil, fmt.Errorf("setting %q: %w", key, apperrors.ErrNotFound)
	}
	return v, nil
}

func (i *Interactor) ApplyPreset(_ context.Context, name string) error {
	return i.svc.ApplyPreset(name)
}

func (i *Interactor) Presets(_ context.Context) ([]dto.PresetOutput, error) {
	names := make([]string, 0, len(domain.Presets))
	for name := range domain.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]dto.PresetOutput, 0, len(names))
	for _, name := range names {
		out = append(out, dto.PresetOutput{Name: name, Description: domain.Presets[name].Description})
	}
	return out, nil
}
