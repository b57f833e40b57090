package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hashicorp/go-hclog"

	"fmtrack/internal/modules/session/domain"
	sessionout "fmtrack/internal/modules/session/port/out"
	"fmtrack/internal/platform/clock"
)

// Issue is a per-section failure that was absorbed. Operations keep
// going past a failing section; the caller decides what to show.
type Issue struct {
	Section string
	Err     error
}

type SessionService struct {
	clock    clock.Clock
	log      hclog.Logger
	sections []sessionout.Section
	observer sessionout.RestoreObserver
}

func NewSessionService(clk clock.Clock, log hclog.Logger, sections []sessionout.Section) *SessionService {
	return &SessionService{clock: clk, log: log, sections: sections}
}

// SetObserver registers the hook notified after restore and reset.
func (s *SessionService) SetObserver(obs sessionout.RestoreObserver) {
	s.observer = obs
}

// Collect gathers every section's payload into a new document. A
// failing section contributes its empty placeholder instead of
// aborting the snapshot.
func (s *SessionService) Collect(ctx context.Context) (domain.Document, []Issue) {
	doc := domain.Document{
		Version:  domain.SchemaVersion,
		SavedAt:  s.clock.Now().Format(time.RFC3339),
		Sections: make(map[string]json.RawMessage, len(s.sections)),
	}
	var issues []Issue
	for _, section := range s.sections {
		raw, err := section.Collect(ctx)
		if err != nil {
			s.log.Warn("section collect failed", "section", section.Name(), "error", err)
			issues = append(issues, Issue{Section: section.Name(), Err: err})
			raw = section.Empty()
		}
		doc.Sections[section.Name()] = raw
	}
	return doc, issues
}

// Restore pushes each section's payload back into its live state.
// Sections absent from the document receive nil and fall back to their
// defaults. Afterwards the observer is notified regardless of issues.
func (s *SessionService) Restore(ctx context.Context, doc domain.Document) []Issue {
	var issues []Issue
	for _, section := range s.sections {
		raw := doc.Sections[section.Name()]
		if err := section.Restore(ctx, raw); err != nil {
			s.log.Warn("section restore failed", "section", section.Name(), "error", err)
			issues = append(issues, Issue{Section: section.Name(), Err: err})
		}
	}
	s.notify(ctx)
	return issues
}

// Reset returns every section to its default state.
func (s *SessionService) Reset(ctx context.Context) []Issue {
	var issues []Issue
	for _, section := range s.sections {
		if err := section.Reset(ctx); err != nil {
			s.log.Warn("section reset failed", "section", section.Name(), "error", err)
			issues = append(issues, Issue{Section: section.Name(), Err: err})
		}
	}
	s.notify(ctx)
	return issues
}

func (s *SessionService) notify(ctx context.Context) {
	if s.observer != nil {
		s.observer.SessionRestored(ctx)
	}
}
