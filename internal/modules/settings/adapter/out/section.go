package out

import (
	"context"
	"encoding/json"
	"fmt"

	"fmtrack/internal/modules/session/port/out"
	"fmtrack/internal/modules/settings/service"
)

type Section struct {
	svc *service.SettingsService
}

func NewSection(svc *service.SettingsService) out.Section {
	return &Section{svc: svc}
}

func (s *Section) Name() string { return "settings" }

func (s *Section) Collect(context.Context) (json.RawMessage, error) {
	raw, err := json.Marshal(s.svc.Values())
	if err != nil {
		return nil, fmt.Errorf("marshal settings section: %w", err)
	}
	return raw, nil
}

// Restore merges the saved map over the defaults, so sessions saved
// before a setting existed still load with it populated.
func (s *Section) Restore(ctx context.Context, raw json.RawMessage) error {
	if len(raw) == 0 {
		return s.Reset(ctx)
	}
	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("decode settings section: %w", err)
	}
	s.svc.Merge(values)
	return nil
}

func (s *Section) Reset(context.Context) error {
	s.svc.Clear()
	return nil
}

func (s *Section) Empty() json.RawMessage {
	return json.RawMessage(`{}`)
}
