package out

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fmtrack/internal/modules/session/domain"
	apperrors "fmtrack/internal/platform/errors"
)

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileDocumentStore(dir)
	doc := domain.Document{
		Version: domain.SchemaVersion,
		SavedAt: "2026-08-25T10:00:00Z",
		Sections: map[string]json.RawMessage{
			"ledger": json.RawMessage(`{"transactions":[["2026-08-20","sale","Gravel","1200"]]}`),
		},
	}
	path := store.Resolve("run one.json")
	if err := store.Write(context.Background(), path, doc); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := store.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if back.SavedAt != doc.SavedAt || back.Version != doc.Version {
		t.Fatalf("header changed: %+v", back)
	}
	// Write indents the document, so compare payloads compacted.
	if compactJSON(t, back.Sections["ledger"]) != compactJSON(t, doc.Sections["ledger"]) {
		t.Fatalf("ledger payload changed: %s", back.Sections["ledger"])
	}
}

func compactJSON(t *testing.T, raw json.RawMessage) string {
	t.Helper()
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		t.Fatalf("compact: %v", err)
	}
	return buf.String()
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileDocumentStore(dir)
	doc := domain.Document{Version: domain.SchemaVersion, SavedAt: "2026-08-25T10:00:00Z"}
	if err := store.Write(context.Background(), store.Resolve("a.json"), doc); err != nil {
		t.Fatalf("write: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestReadMissing(t *testing.T) {
	t.Parallel()

	store := NewFileDocumentStore(t.TempDir())
	_, err := store.Read(context.Background(), store.Resolve("absent.json"))
	if !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestReadInvalidJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileDocumentStore(dir)
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{oops"), 0o644); err != nil {
		t.Fatalf("write broken file: %v", err)
	}
	_, err := store.Read(context.Background(), path)
	if !errors.Is(err, apperrors.ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestListMarksUnreadable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileDocumentStore(dir)
	good := domain.Document{Version: domain.SchemaVersion, SavedAt: "2026-08-25T09:00:00Z"}
	if err := store.Write(context.Background(), store.Resolve("good.json"), good); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("write bad file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o644); err != nil {
		t.Fatalf("write txt file: %v", err)
	}

	summaries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(summaries))
	}
	byName := map[string]domain.Summary{}
	for _, s := range summaries {
		byName[s.Filename] = s
	}
	if byName["good.json"].SavedAt != "2026-08-25T09:00:00Z" {
		t.Fatalf("good entry: %+v", byName["good.json"])
	}
	if byName["bad.json"].SavedAt != domain.UnreadableSavedAt {
		t.Fatalf("bad entry not marked unreadable: %+v", byName["bad.json"])
	}
}

func TestListDefaultsMissingHeaderFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileDocumentStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "legacy.json"), []byte(`{"ledger":{"transactions":[]}}`), 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	summaries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(summaries))
	}
	if summaries[0].SavedAt != domain.UnknownSavedAt {
		t.Fatalf("saved_at = %q, want %q", summaries[0].SavedAt, domain.UnknownSavedAt)
	}
	if summaries[0].Version != domain.SchemaVersion {
		t.Fatalf("version = %q, want %q", summaries[0].Version, domain.SchemaVersion)
	}
}

func TestListMissingDir(t *testing.T) {
	t.Parallel()

	store := NewFileDocumentStore(filepath.Join(t.TempDir(), "nope"))
	summaries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected empty listing, got %d", len(summaries))
	}
}

func TestDeleteMissing(t *testing.T) {
	t.Parallel()

	store := NewFileDocumentStore(t.TempDir())
	err := store.Delete(context.Background(), store.Resolve("gone.json"))
	if !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestLoadDoesNotMutateFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileDocumentStore(dir)
	doc := domain.Document{
		Version: domain.SchemaVersion,
		SavedAt: "2026-08-25T10:00:00Z",
		Sections: map[string]json.RawMessage{
			"roi_tracker": json.RawMessage(`{"investments":[{"purchase_date":"2026-08-01"}]}`),
		},
	}
	path := store.Resolve("stable.json")
	if err := store.Write(context.Background(), path, doc); err != nil {
		t.Fatalf("write: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read raw: %v", err)
	}
	if _, err := store.Read(context.Background(), path); err != nil {
		t.Fatalf("read: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read raw again: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("reading a session modified the file on disk")
	}
}
