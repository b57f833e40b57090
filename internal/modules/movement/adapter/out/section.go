package out

import (
	"context"
	"encoding/json"
	"fmt"

	"fmtrack/internal/modules/movement/domain"
	"fmtrack/internal/modules/movement/service"
	sessionout "fmtrack/internal/modules/session/port/out"
)

type payload struct {
	HaulingSessions    []domain.Hauling    `json:"hauling_sessions"`
	ProcessingSessions []domain.Processing `json:"processing_sessions"`
}

type Section struct {
	svc *service.MovementService
}

func NewSection(svc *service.MovementService) sessionout.Section {
	return &Section{svc: svc}
}

func (s *Section) Name() string { return "material_movement" }

func (s *Section) Collect(context.Context) (json.RawMessage, error) {
	log := s.svc.Snapshot()
	raw, err := json.Marshal(payload{
		HaulingSessions:    log.HaulingSessions,
		ProcessingSessions: log.ProcessingSessions,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal material movement section: %w", err)
	}
	return raw, nil
}

func (s *Section) Restore(ctx context.Context, raw json.RawMessage) error {
	if len(raw) == 0 {
		return s.Reset(ctx)
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("decode material movement section: %w", err)
	}
	s.svc.Apply(domain.Log{
		HaulingSessions:    p.HaulingSessions,
		ProcessingSessions: p.ProcessingSessions,
	})
	return nil
}

func (s *Section) Reset(context.Context) error {
	s.svc.Clear()
	return nil
}

func (s *Section) Empty() json.RawMessage {
	return json.RawMessage(`{"hauling_sessions":[],"processing_sessions":[]}`)
}
