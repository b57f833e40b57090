package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sessiondto "fmtrack/internal/modules/session/dto"
	sessionin "fmtrack/internal/modules/session/port/in"
	sessionout "fmtrack/internal/modules/session/port/out"
	"fmtrack/internal/modules/session/service"
	"fmtrack/internal/platform/clock"
	"fmtrack/internal/platform/sanitize"
)

type Interactor struct {
	svc   *service.SessionService
	store sessionout.DocumentStore
	clock clock.Clock
}

func NewInteractor(svc *service.SessionService, store sessionout.DocumentStore, clk clock.Clock) sessionin.Usecase {
	return &Interactor{svc: svc, store: store, clock: clk}
}

func (i *Interactor) Save(ctx context.Context, input sessiondto.SaveInput) (sessiondto.SaveOutput, error) {
	filename := i.filenameFor(input.Name, "session")
	return i.saveAs(ctx, filename, i.store.Resolve(filename))
}

func (i *Interactor) SaveTo(ctx context.Context, path string) (sessiondto.SaveOutput, error) {
	if path == "" {
		return sessiondto.SaveOutput{}, fmt.Errorf("save path is required")
	}
	return i.saveAs(ctx, "", path)
}

func (i *Interactor) saveAs(ctx context.Context, filename, path string) (sessiondto.SaveOutput, error) {
	doc, issues := i.svc.Collect(ctx)
	if err := i.store.Write(ctx, path, doc); err != nil {
		return sessiondto.SaveOutput{}, err
	}
	return sessiondto.SaveOutput{
		Filename: filename,
		Path:     path,
		SavedAt:  doc.SavedAt,
		Issues:   toDTOIssues(issues),
	}, nil
}

func (i *Interactor) Load(ctx context.Context, input sessiondto.LoadInput) (sessiondto.LoadOutput, error) {
	if input.Path == "" {
		return sessiondto.LoadOutput{}, fmt.Errorf("session path is required")
	}
	path := input.Path
	if !strings.ContainsAny(path, `/\`) {
		path = i.store.Resolve(path)
	}
	doc, err := i.store.Read(ctx, path)
	if err != nil {
		return sessiondto.LoadOutput{}, err
	}
	issues := i.svc.Restore(ctx, doc)
	return sessiondto.LoadOutput{
		Path:    path,
		SavedAt: doc.SavedAt,
		Version: doc.Version,
		Issues:  toDTOIssues(issues),
	}, nil
}

// NewSession resets all sections. With Autosave set, the current state
// is first written under a generated autosave name; without it the
// unsaved state is discarded.
func (i *Interactor) NewSession(ctx context.Context, input sessiondto.NewSessionInput) (sessiondto.NewSessionOutput, error) {
	var out sessiondto.NewSessionOutput
	if input.Autosave {
		filename := i.timestampName("autosave")
		path := i.store.Resolve(filename)
		doc, issues := i.svc.Collect(ctx)
		if err := i.store.Write(ctx, path, doc); err != nil {
			return sessiondto.NewSessionOutput{}, fmt.Errorf("autosave before new session: %w", err)
		}
		out.AutosavePath = path
		out.Issues = toDTOIssues(issues)
	}
	out.Issues = append(out.Issues, toDTOIssues(i.svc.Reset(ctx))...)
	return out, nil
}

// ListSaved returns saved sessions newest first. Ordering compares the
// saved_at strings directly; entries with the unreadable marker sort
// with everything else.
func (i *Interactor) ListSaved(ctx context.Context) ([]sessiondto.SessionSummary, error) {
	summaries, err := i.store.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(summaries, func(a, b int) bool {
		return summaries[a].SavedAt > summaries[b].SavedAt
	})
	out := make([]sessiondto.SessionSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, sessiondto.SessionSummary{
			Filename: s.Filename,
			Path:     s.Path,
			SavedAt:  s.SavedAt,
			Version:  s.Version,
		})
	}
	return out, nil
}

func (i *Interactor) Delete(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("session path is required")
	}
	if !strings.ContainsAny(path, `/\`) {
		path = i.store.Resolve(path)
	}
	return i.store.Delete(ctx, path)
}

func (i *Interactor) Exists(filename string) bool {
	return i.store.Exists(i.filenameFor(filename, "session"))
}

func (i *Interactor) filenameFor(name, prefix string) string {
	clean := sanitize.Filename(name)
	if clean == "" || clean == ".json" {
		clean = i.timestampName(prefix)
	}
	if !strings.HasSuffix(clean, ".json") {
		clean += ".json"
	}
	return clean
}

func (i *Interactor) timestampName(prefix string) string {
	return fmt.Sprintf("%s_%s.json", prefix, clock.FileStamp(i.clock.Now()))
}

func toDTOIssues(issues []service.Issue) []sessiondto.Issue {
	if len(issues) == 0 {
		return nil
	}
	out := make([]sessiondto.Issue, 0, len(issues))
	for _, issue := range issues {
		out = append(out, sessiondto.Issue{Section: issue.Section, Problem: issue.Err.Error()})
	}
	return out
}
