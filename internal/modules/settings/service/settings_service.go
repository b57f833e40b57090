package service

import (
	"fmt"

	"fmtrack/internal/modules/settings/domain"
	apperrors "fmtrack/internal/platform/errors"
)

type SettingsService struct {
	values map[string]any
}

func NewSettingsService() *SettingsService {
	return &SettingsService{values: domain.Defaults()}
}

func (s *SettingsService) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *SettingsService) String(key string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return ""
}

func (s *SettingsService) Float(key string) float64 {
	switch v := s.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (s *SettingsService) Bool(key string) bool {
	v, _ := s.values[key].(bool)
	return v
}

// Set only accepts keys that exist in the defaults; unknown keys point
// at a typo rather than a new setting.
func (s *SettingsService) Set(key string, value any) error {
	if _, known := domain.Defaults()[key]; !known {
		return fmt.Errorf("setting %q: %w", key, apperrors.ErrNotFound)
	}
	s.values[key] = value
	return nil
}

// ApplyPreset overwrites the challenge-rule keys with a difficulty
// profile.
func (s *SettingsService) ApplyPreset(name string) error {
	preset, ok := domain.Presets[name]
	if !ok {
		return fmt.Errorf("difficulty preset %q: %w", name, apperrors.ErrNotFound)
	}
	s.values["difficulty_level"] = name
	s.values["starting_capital"] = preset.SeedCapital
	s.values["personal_split"] = preset.PersonalSplit
	s.values["company_split"] = preset.CompanySplit
	s.values["oil_cap_amount"] = preset.OilCap
	s.values["daily_limit_enabled"] = preset.HasDailyLimit
	s.values["daily_limit_amount"] = preset.DailyLimit
	s.values["bar_threshold"] = preset.BarThreshold
	return nil
}

func (s *SettingsService) Values() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Merge lays saved values over the defaults. Unknown keys are kept so
// documents written by newer builds round-trip.
func (s *SettingsService) Merge(values map[string]any) {
	merged := domain.Defaults()
	for k, v := range values {
		merged[k] = v
	}
	s.values = merged
}

func (s *SettingsService) Clear() {
	s.values = domain.Defaults()
}
