package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

const SchemaVersion = "1.0"

// UnreadableSavedAt marks listing entries whose file could not be
// parsed. It is an ordinary string so listings sort it like any other
// saved_at value.
const UnreadableSavedAt = "unreadable"

// UnknownSavedAt fills the listing slot for parseable documents whose
// header omits saved_at.
const UnknownSavedAt = "Unknown"

// SectionOrder is the fixed order sections are collected, restored and
// reset in.
var SectionOrder = []string{
	"ledger",
	"inventory",
	"roi_tracker",
	"budget_planner",
	"material_movement",
	"settings",
}

// Document is one saved session. Section payloads stay opaque raw JSON
// here; each section owns its own shape. On disk the sections sit as
// top-level keys next to version and saved_at.
type Document struct {
	Version  string
	SavedAt  string
	Sections map[string]json.RawMessage
}

func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	writeField := func(key string, value []byte) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(value)
	}
	v, err := json.Marshal(d.Version)
	if err != nil {
		return nil, fmt.Errorf("marshal version: %w", err)
	}
	writeField("version", v)
	sa, err := json.Marshal(d.SavedAt)
	if err != nil {
		return nil, fmt.Errorf("marshal saved_at: %w", err)
	}
	writeField("saved_at", sa)

	seen := make(map[string]bool, len(d.Sections))
	for _, name := range SectionOrder {
		if raw, ok := d.Sections[name]; ok {
			writeField(name, raw)
			seen[name] = true
		}
	}
	// Unknown sections are preserved so foreign documents round-trip.
	var extra []string
	for name := range d.Sections {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		writeField(name, d.Sections[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *Document) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("decode session document: %w", err)
	}
	d.Sections = make(map[string]json.RawMessage, len(fields))
	for key, raw := range fields {
		switch key {
		case "version":
			if err := json.Unmarshal(raw, &d.Version); err != nil {
				return fmt.Errorf("decode version: %w", err)
			}
		case "saved_at":
			if err := json.Unmarshal(raw, &d.SavedAt); err != nil {
				return fmt.Errorf("decode saved_at: %w", err)
			}
		default:
			d.Sections[key] = raw
		}
	}
	return nil
}

// Summary is one row of the saved-session listing.
type Summary struct {
	Filename string
	Path     string
	SavedAt  string
	Version  string
}
