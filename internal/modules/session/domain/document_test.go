package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDocumentFlattensSections(t *testing.T) {
	t.Parallel()

	doc := Document{
		Version: SchemaVersion,
		SavedAt: "2026-08-25T10:00:00Z",
		Sections: map[string]json.RawMessage{
			"ledger":   json.RawMessage(`{"transactions":[]}`),
			"settings": json.RawMessage(`{"difficulty_level":"Easy"}`),
		},
	}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(b, &flat); err != nil {
		t.Fatalf("reparse document: %v", err)
	}
	for _, key := range []string{"version", "saved_at", "ledger", "settings"} {
		if _, ok := flat[key]; !ok {
			t.Fatalf("missing top-level key %q in %s", key, b)
		}
	}
	if _, ok := flat["sections"]; ok {
		t.Fatalf("sections must not nest: %s", b)
	}
}

func TestDocumentKeyOrder(t *testing.T) {
	t.Parallel()

	doc := Document{
		Version: SchemaVersion,
		SavedAt: "2026-08-25T10:00:00Z",
		Sections: map[string]json.RawMessage{
			"settings":  json.RawMessage(`{}`),
			"ledger":    json.RawMessage(`{}`),
			"inventory": json.RawMessage(`{}`),
		},
	}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	s := string(b)
	if !(strings.Index(s, `"version"`) < strings.Index(s, `"saved_at"`) &&
		strings.Index(s, `"saved_at"`) < strings.Index(s, `"ledger"`) &&
		strings.Index(s, `"ledger"`) < strings.Index(s, `"inventory"`) &&
		strings.Index(s, `"inventory"`) < strings.Index(s, `"settings"`)) {
		t.Fatalf("unexpected key order: %s", s)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	in := `{"version":"1.0","saved_at":"2026-08-25T10:00:00Z","ledger":{"transactions":[]},"future_section":{"x":1}}`
	var doc Document
	if err := json.Unmarshal([]byte(in), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Version != "1.0" {
		t.Fatalf("unexpected version %q", doc.Version)
	}
	if string(doc.Sections["future_section"]) != `{"x":1}` {
		t.Fatalf("unknown section not preserved: %s", doc.Sections["future_section"])
	}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again Document
	if err := json.Unmarshal(b, &again); err != nil {
		t.Fatalf("second unmarshal: %v", err)
	}
	if string(again.Sections["ledger"]) != `{"transactions":[]}` {
		t.Fatalf("ledger payload changed: %s", again.Sections["ledger"])
	}
}
