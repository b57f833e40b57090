package out

import (
	"context"
	"encoding/json"

	"fmtrack/internal/modules/session/domain"
)

// Section is the contract every data section implements. Collect and
// Restore exchange the section's own payload shape as raw JSON; the
// session module never inspects it.
type Section interface {
	Name() string
	Collect(ctx context.Context) (json.RawMessage, error)
	Restore(ctx context.Context, raw json.RawMessage) error
	Reset(ctx context.Context) error
	// Empty is the placeholder stored when Collect fails.
	Empty() json.RawMessage
}

// DocumentStore persists session documents.
type DocumentStore interface {
	Write(ctx context.Context, path string, doc domain.Document) error
	Read(ctx context.Context, path string) (domain.Document, error)
	List(ctx context.Context) ([]domain.Summary, error)
	Delete(ctx context.Context, path string) error
	Resolve(filename string) string
	Exists(filename string) bool
}

// RestoreObserver is notified after a restore or reset completes, so
// derived views can recompute.
type RestoreObserver interface {
	SessionRestored(ctx context.Context)
}
