package dto

import "fmtrack/internal/modules/session/domain"

// UnreadableSavedAt is the SavedAt value ListSaved reports for save
// files that could not be parsed.
const UnreadableSavedAt = domain.UnreadableSavedAt

// Issue reports a per-section failure that was absorbed rather than
// propagated.
type Issue struct {
	Section string
	Problem string
}

type SaveInput struct {
	Name string
}

type SaveOutput struct {
	Filename string
	Path     string
	SavedAt  string
	Issues   []Issue
}

type LoadInput struct {
	// Path may be an absolute path or a bare filename resolved against
	// the sessions directory.
	Path string
}

type LoadOutput struct {
	Path    string
	SavedAt string
	Version string
	Issues  []Issue
}

type NewSessionInput struct {
	Autosave bool
}

type NewSessionOutput struct {
	AutosavePath string
	Issues       []Issue
}

type SessionSummary struct {
	Filename string
	Path     string
	SavedAt  string
	Version  string
}
