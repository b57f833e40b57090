package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"

	inventoryadapter "fmtrack/internal/modules/inventory/adapter/out"
	inventoryservice "fmtrack/internal/modules/inventory/service"
	ledgeradapter "fmtrack/internal/modules/ledger/adapter/out"
	ledgerdomain "fmtrack/internal/modules/ledger/domain"
	ledgerservice "fmtrack/internal/modules/ledger/service"
	adapterout "fmtrack/internal/modules/session/adapter/out"
	sessiondto "fmtrack/internal/modules/session/dto"
	sessionout "fmtrack/internal/modules/session/port/out"
	"fmtrack/internal/modules/session/service"
)

type fakeClock struct {
	times []time.Time
}

func (c *fakeClock) Now() time.Time {
	if len(c.times) == 0 {
		return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	}
	next := c.times[0]
	if len(c.times) > 1 {
		c.times = c.times[1:]
	}
	return next
}

type fakeSection struct {
	name       string
	payload    json.RawMessage
	collectErr error
	restoreErr error
	resetErr   error

	restored []json.RawMessage
	resets   int
}

func (s *fakeSection) Name() string { return s.name }

func (s *fakeSection) Collect(context.Context) (json.RawMessage, error) {
	if s.collectErr != nil {
		return nil, s.collectErr
	}
	return s.payload, nil
}

func (s *fakeSection) Restore(_ context.Context, raw json.RawMessage) error {
	s.restored = append(s.restored, raw)
	return s.restoreErr
}

func (s *fakeSection) Reset(context.Context) error {
	s.resets++
	return s.resetErr
}

func (s *fakeSection) Empty() json.RawMessage { return json.RawMessage(`{"items":[]}`) }

type recordingObserver struct {
	notified int
}

func (o *recordingObserver) SessionRestored(context.Context) { o.notified++ }

func newFixture(t *testing.T, sections []sessionout.Section) (*Interactor, *fakeClock, string) {
	t.Helper()
	dir := t.TempDir()
	clk := &fakeClock{}
	svc := service.NewSessionService(clk, hclog.NewNullLogger(), sections)
	store := adapterout.NewFileDocumentStore(dir)
	uc := NewInteractor(svc, store, clk).(*Interactor)
	return uc, clk, dir
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	ledger := &fakeSection{name: "ledger", payload: json.RawMessage(`{"transactions":[["2026-08-20","sale","Gravel","1200"]],"starting_personal":10000,"starting_company":90000}`)}
	roi := &fakeSection{name: "roi_tracker", payload: json.RawMessage(`{"investments":[{"name":"Excavator","purchase_date":"2026-07-01","revenues":[{"date":"2026-08-01","amount":500}]}]}`)}
	uc, _, _ := newFixture(t, []sessionout.Section{ledger, roi})

	saved, err := uc.Save(context.Background(), sessiondto.SaveInput{Name: "quarry week 1"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Filename != "quarry week 1.json" {
		t.Fatalf("unexpected filename %q", saved.Filename)
	}
	if len(saved.Issues) != 0 {
		t.Fatalf("unexpected issues: %+v", saved.Issues)
	}

	loaded, err := uc.Load(context.Background(), sessiondto.LoadInput{Path: saved.Path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Version != "1.0" {
		t.Fatalf("unexpected version %q", loaded.Version)
	}
	if len(roi.restored) != 1 || !sameJSON(t, roi.restored[0], roi.payload) {
		t.Fatalf("roi payload changed across round trip: %s", roi.restored[0])
	}
	if len(ledger.restored) != 1 || !sameJSON(t, ledger.restored[0], ledger.payload) {
		t.Fatalf("ledger payload changed across round trip: %s", ledger.restored[0])
	}
}

// Round trip through real sections and the real file store: values set
// before a save come back identical after a load, and the file keeps
// their numeric shape.
func TestRoundTripPreservesSectionValues(t *testing.T) {
	t.Parallel()

	ledgerSvc := ledgerservice.NewLedgerService()
	ledgerSvc.Apply(ledgerdomain.Book{
		Transactions: []ledgerdomain.Transaction{
			{"Date": "2026-08-20", "Type": "sale", "Item": "Gravel", "Total": "1200"},
		},
		StartingPersonal: 15000,
		StartingCompany:  90000,
	})
	inventorySvc := inventoryservice.NewInventoryService()
	inventorySvc.RecordOilSale(250.5)

	uc, _, _ := newFixture(t, []sessionout.Section{
		ledgeradapter.NewSection(ledgerSvc),
		inventoryadapter.NewSection(inventorySvc),
	})

	saved, err := uc.Save(context.Background(), sessiondto.SaveInput{Name: "shape"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(saved.Issues) != 0 {
		t.Fatalf("unexpected issues: %+v", saved.Issues)
	}

	raw, err := os.ReadFile(saved.Path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	for _, want := range []string{`"starting_personal": 15000`, `"oil_lifetime_sold": 250.5`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("saved file lost numeric shape, missing %s in:\n%s", want, raw)
		}
	}

	ledgerSvc.Clear()
	inventorySvc.Clear()

	loaded, err := uc.Load(context.Background(), sessiondto.LoadInput{Path: saved.Path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Issues) != 0 {
		t.Fatalf("unexpected restore issues: %+v", loaded.Issues)
	}
	book := ledgerSvc.Snapshot()
	if book.StartingPersonal != 15000 {
		t.Fatalf("starting_personal = %v, want 15000", book.StartingPersonal)
	}
	if len(book.Transactions) != 1 || book.Transactions[0]["Item"] != "Gravel" {
		t.Fatalf("transactions changed across round trip: %+v", book.Transactions)
	}
	if sold := inventorySvc.Snapshot().OilLifetimeSold; sold != 250.5 {
		t.Fatalf("oil_lifetime_sold = %v, want 250.5", sold)
	}
}

func TestCollectIsolatesFailingSection(t *testing.T) {
	t.Parallel()

	broken := &fakeSection{name: "inventory", collectErr: errors.New("storage offline")}
	healthy := &fakeSection{name: "ledger", payload: json.RawMessage(`{"transactions":[]}`)}
	uc, _, _ := newFixture(t, []sessionout.Section{healthy, broken})

	saved, err := uc.Save(context.Background(), sessiondto.SaveInput{Name: "partial"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(saved.Issues) != 1 || saved.Issues[0].Section != "inventory" {
		t.Fatalf("expected one inventory issue, got %+v", saved.Issues)
	}

	loaded, err := uc.Load(context.Background(), sessiondto.LoadInput{Path: saved.Path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Issues) != 0 {
		t.Fatalf("unexpected restore issues: %+v", loaded.Issues)
	}
	if !sameJSON(t, broken.restored[0], json.RawMessage(`{"items":[]}`)) {
		t.Fatalf("failing section should have stored its placeholder, got %s", broken.restored[0])
	}
}

func TestRestoreIsolatesFailingSection(t *testing.T) {
	t.Parallel()

	bad := &fakeSection{name: "ledger", payload: json.RawMessage(`{}`), restoreErr: errors.New("corrupt rows")}
	good := &fakeSection{name: "settings", payload: json.RawMessage(`{"difficulty_level":"Easy"}`)}
	uc, _, _ := newFixture(t, []sessionout.Section{bad, good})

	saved, err := uc.Save(context.Background(), sessiondto.SaveInput{Name: "x"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := uc.Load(context.Background(), sessiondto.LoadInput{Path: saved.Path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Issues) != 1 || loaded.Issues[0].Section != "ledger" {
		t.Fatalf("expected ledger issue, got %+v", loaded.Issues)
	}
	if len(good.restored) != 1 {
		t.Fatal("later section was not restored after an earlier failure")
	}
}

func TestSaveFallsBackToTimestampName(t *testing.T) {
	t.Parallel()

	section := &fakeSection{name: "ledger", payload: json.RawMessage(`{}`)}
	uc, clk, _ := newFixture(t, []sessionout.Section{section})
	clk.times = []time.Time{time.Date(2026, 8, 25, 14, 30, 5, 0, time.UTC)}

	saved, err := uc.Save(context.Background(), sessiondto.SaveInput{Name: "///???"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Filename != "session_20260825_143005.json" {
		t.Fatalf("unexpected fallback filename %q", saved.Filename)
	}
}

func TestListSavedSortsBySavedAtDescending(t *testing.T) {
	t.Parallel()

	section := &fakeSection{name: "ledger", payload: json.RawMessage(`{}`)}
	uc, clk, dir := newFixture(t, []sessionout.Section{section})

	clk.times = []time.Time{
		time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
	}
	for _, name := range []string{"first", "third", "second"} {
		if _, err := uc.Save(context.Background(), sessiondto.SaveInput{Name: name}); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}
	writeBrokenSession(t, dir)

	summaries, err := uc.ListSaved(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 4 {
		t.Fatalf("expected 4 summaries, got %d", len(summaries))
	}
	order := []string{summaries[0].Filename, summaries[1].Filename, summaries[2].Filename}
	want := []string{"unreadable.json", "third.json", "second.json"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected order %v, want %v first", order, want)
		}
	}
	if summaries[0].SavedAt != "unreadable" {
		t.Fatalf("broken file should list with the unreadable marker, got %q", summaries[0].SavedAt)
	}
}

func TestNewSessionAutosavesThenResets(t *testing.T) {
	t.Parallel()

	section := &fakeSection{name: "ledger", payload: json.RawMessage(`{"transactions":[["a"]]}`)}
	uc, clk, _ := newFixture(t, []sessionout.Section{section})
	clk.times = []time.Time{time.Date(2026, 8, 25, 16, 45, 0, 0, time.UTC)}

	out, err := uc.NewSession(context.Background(), sessiondto.NewSessionInput{Autosave: true})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if out.AutosavePath == "" {
		t.Fatal("expected an autosave path")
	}
	if section.resets != 1 {
		t.Fatalf("expected one reset, got %d", section.resets)
	}

	summaries, err := uc.ListSaved(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Filename != "autosave_20260825_164500.json" {
		t.Fatalf("unexpected autosave listing %+v", summaries)
	}
}

func TestNewSessionWithoutAutosave(t *testing.T) {
	t.Parallel()

	section := &fakeSection{name: "ledger", payload: json.RawMessage(`{}`)}
	uc, _, _ := newFixture(t, []sessionout.Section{section})

	out, err := uc.NewSession(context.Background(), sessiondto.NewSessionInput{})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if out.AutosavePath != "" {
		t.Fatalf("unexpected autosave %q", out.AutosavePath)
	}
	if section.resets != 1 {
		t.Fatalf("expected one reset, got %d", section.resets)
	}
	summaries, err := uc.ListSaved(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected no saved files, got %+v", summaries)
	}
}

func TestObserverNotifiedAfterRestoreAndReset(t *testing.T) {
	t.Parallel()

	section := &fakeSection{name: "ledger", payload: json.RawMessage(`{}`)}
	dir := t.TempDir()
	clk := &fakeClock{}
	svc := service.NewSessionService(clk, hclog.NewNullLogger(), []sessionout.Section{section})
	obs := &recordingObserver{}
	svc.SetObserver(obs)
	store := adapterout.NewFileDocumentStore(dir)
	uc := NewInteractor(svc, store, clk)

	saved, err := uc.Save(context.Background(), sessiondto.SaveInput{Name: "s"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if obs.notified != 0 {
		t.Fatalf("save must not notify, got %d", obs.notified)
	}
	if _, err := uc.Load(context.Background(), sessiondto.LoadInput{Path: saved.Path}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if obs.notified != 1 {
		t.Fatalf("expected one notification after restore, got %d", obs.notified)
	}
	if _, err := uc.NewSession(context.Background(), sessiondto.NewSessionInput{}); err != nil {
		t.Fatalf("new session: %v", err)
	}
	if obs.notified != 2 {
		t.Fatalf("expected notification after reset, got %d", obs.notified)
	}
}

func TestDeleteMissingReportsFailure(t *testing.T) {
	t.Parallel()

	section := &fakeSection{name: "ledger", payload: json.RawMessage(`{}`)}
	uc, _, _ := newFixture(t, []sessionout.Section{section})
	if err := uc.Delete(context.Background(), "never-saved.json"); err == nil {
		t.Fatal("expected delete of a missing session to fail")
	}
}

// sameJSON compares payloads after compacting both; the store writes
// indented documents, so raw bytes differ across a round trip while
// the values and their numeric shapes do not.
func sameJSON(t *testing.T, got, want json.RawMessage) bool {
	t.Helper()
	var g, w bytes.Buffer
	if err := json.Compact(&g, got); err != nil {
		t.Fatalf("compact got: %v", err)
	}
	if err := json.Compact(&w, want); err != nil {
		t.Fatalf("compact want: %v", err)
	}
	return g.String() == w.String()
}

func writeBrokenSession(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "unreadable.json"), []byte("{{{"), 0o644); err != nil {
		t.Fatalf("write broken session: %v", err)
	}
}
