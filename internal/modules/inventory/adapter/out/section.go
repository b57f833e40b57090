package out

import (
	"context"
	"encoding/json"
	"fmt"

	"fmtrack/internal/modules/inventory/domain"
	"fmtrack/internal/modules/inventory/service"
	sessionout "fmtrack/internal/modules/session/port/out"
)

type payload struct {
	Items           []domain.Item `json:"inventory_items"`
	OilCapEnabled   bool          `json:"oil_cap_enabled"`
	OilCapAmount    float64       `json:"oil_cap_amount"`
	OilLifetimeSold float64       `json:"oil_lifetime_sold"`
}

type Section struct {
	svc *service.InventoryService
}

func NewSection(svc *service.InventoryService) sessionout.Section {
	return &Section{svc: svc}
}

func (s *Section) Name() string { return "inventory" }

func (s *Section) Collect(context.Context) (json.RawMessage, error) {
	state := s.svc.Snapshot()
	raw, err := json.Marshal(payload{
		Items:           state.Items,
		OilCapEnabled:   state.OilCapEnabled,
		OilCapAmount:    state.OilCapAmount,
		OilLifetimeSold: state.OilLifetimeSold,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal inventory section: %w", err)
	}
	return raw, nil
}

func (s *Section) Restore(ctx context.Context, raw json.RawMessage) error {
	if len(raw) == 0 {
		return s.Reset(ctx)
	}
	p := payload{
		OilCapEnabled: domain.DefaultOilCapEnabled,
		OilCapAmount:  domain.DefaultOilCapAmount,
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("decode inventory section: %w", err)
	}
	s.svc.Apply(domain.State{
		Items:           p.Items,
		OilCapEnabled:   p.OilCapEnabled,
		OilCapAmount:    p.OilCapAmount,
		OilLifetimeSold: p.OilLifetimeSold,
	})
	return nil
}

func (s *Section) Reset(context.Context) error {
	s.svc.Clear()
	return nil
}

func (s *Section) Empty() json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"inventory_items":[],"oil_cap_enabled":%t,"oil_cap_amount":%d,"oil_lifetime_sold":0}`,
		domain.DefaultOilCapEnabled, domain.DefaultOilCapAmount))
}
