package out

import (
	"context"
	"encoding/json"
	"fmt"

	"fmtrack/internal/modules/budget/domain"
	"fmtrack/internal/modules/budget/service"
	sessionout "fmtrack/internal/modules/session/port/out"
)

type payload struct {
	EquipmentItems []domain.EquipmentItem `json:"equipment_items"`
	PowerSetups    []domain.PowerSetup    `json:"power_setups"`
}

type Section struct {
	svc *service.BudgetService
}

func NewSection(svc *service.BudgetService) sessionout.Section {
	return &Section{svc: svc}
}

func (s *Section) Name() string { return "budget_planner" }

func (s *Section) Collect(context.Context) (json.RawMessage, error) {
	plan := s.svc.Snapshot()
	raw, err := json.Marshal(payload{EquipmentItems: plan.EquipmentItems, PowerSetups: plan.PowerSetups})
	if err != nil {
		return nil, fmt.Errorf("marshal budget section: %w", err)
	}
	return raw, nil
}

func (s *Section) Restore(ctx context.Context, raw json.RawMessage) error {
	if len(raw) == 0 {
		return s.Reset(ctx)
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("decode budget section: %w", err)
	}
	s.svc.Apply(domain.Plan{EquipmentItems: p.EquipmentItems, PowerSetups: p.PowerSetups})
	return nil
}

func (s *Section) Reset(context.Context) error {
	s.svc.Clear()
	return nil
}

func (s *Section) Empty() json.RawMessage {
	return json.RawMessage(`{"equipment_items":[],"power_setups":[]}`)
}
