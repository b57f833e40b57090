package out

import (
	"context"
	"encoding/json"
	"fmt"

	"fmtrack/internal/modules/ledger/domain"
	"fmtrack/internal/modules/ledger/service"
	sessionout "fmtrack/internal/modules/session/port/out"
)

type payload struct {
	Transactions     []domain.Transaction `json:"transactions"`
	StartingPersonal float64              `json:"starting_personal"`
	StartingCompany  float64              `json:"starting_company"`
}

// Section exposes the ledger to session snapshots.
type Section struct {
	svc *service.LedgerService
}

func NewSection(svc *service.LedgerService) sessionout.Section {
	return &Section{svc: svc}
}

func (s *Section) Name() string { return "ledger" }

func (s *Section) Collect(context.Context) (json.RawMessage, error) {
	book := s.svc.Snapshot()
	raw, err := json.Marshal(payload{
		Transactions:     book.Transactions,
		StartingPersonal: book.StartingPersonal,
		StartingCompany:  book.StartingCompany,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal ledger section: %w", err)
	}
	return raw, nil
}

// Restore applies a saved payload. Missing keys keep their documented
// defaults; a nil payload resets the section.
func (s *Section) Restore(ctx context.Context, raw json.RawMessage) error {
	if len(raw) == 0 {
		return s.Reset(ctx)
	}
	p := payload{
		StartingPersonal: domain.DefaultStartingPersonal,
		StartingCompany:  domain.DefaultStartingCompany,
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("decode ledger section: %w", err)
	}
	s.svc.Apply(domain.Book{
		Transactions:     p.Transactions,
		StartingPersonal: p.StartingPersonal,
		StartingCompany:  p.StartingCompany,
	})
	return nil
}

func (s *Section) Reset(context.Context) error {
	s.svc.Clear()
	return nil
}

func (s *Section) Empty() json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"transactions":[],"starting_personal":%d,"starting_company":%d}`,
		domain.DefaultStartingPersonal, domain.DefaultStartingCompany))
}
