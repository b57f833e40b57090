package out

import (
	"context"
	"encoding/json"
	"fmt"

	"fmtrack/internal/modules/roi/domain"
	"fmtrack/internal/modules/roi/service"
	sessionout "fmtrack/internal/modules/session/port/out"
)

type payload struct {
	Investments []domain.Investment `json:"investments"`
}

// Section exposes the ROI tracker to session snapshots. Purchase and
// revenue dates are typed calendar days, so a round trip through a
// saved session keeps them distinct from timestamps.
type Section struct {
	svc *service.ROIService
}

func NewSection(svc *service.ROIService) sessionout.Section {
	return &Section{svc: svc}
}

func (s *Section) Name() string { return "roi_tracker" }

func (s *Section) Collect(context.Context) (json.RawMessage, error) {
	raw, err := json.Marshal(payload{Investments: s.svc.Snapshot()})
	if err != nil {
		return nil, fmt.Errorf("marshal roi section: %w", err)
	}
	return raw, nil
}

func (s *Section) Restore(ctx context.Context, raw json.RawMessage) error {
	if len(raw) == 0 {
		return s.Reset(ctx)
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("decode roi section: %w", err)
	}
	s.svc.Apply(p.Investments)
	return nil
}

func (s *Section) Reset(context.Context) error {
	s.svc.Clear()
	return nil
}

func (s *Section) Empty() json.RawMessage {
	return json.RawMessage(`{"investments":[]}`)
}
