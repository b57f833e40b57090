package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fmtrack/internal/modules/session/domain"
	sessionout "fmtrack/internal/modules/session/port/out"
	apperrors "fmtrack/internal/platform/errors"
)

// FileDocumentStore keeps session documents as *.json files in a
// single directory.
type FileDocumentStore struct {
	dir string
}

func NewFileDocumentStore(dir string) sessionout.DocumentStore {
	return &FileDocumentStore{dir: dir}
}

func (s *FileDocumentStore) Resolve(filename string) string {
	return filepath.Join(s.dir, filename)
}

func (s *FileDocumentStore) Exists(filename string) bool {
	_, err := os.Stat(s.Resolve(filename))
	return err == nil
}

// Write serializes the document and replaces the target atomically:
// the payload goes to a temp file in the same directory first, then a
// rename swaps it in, so a crash mid-write never leaves a truncated
// session behind.
func (s *FileDocumentStore) Write(_ context.Context, path string, doc domain.Document) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session document: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sessions dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write session document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp session file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (s *FileDocumentStore) Read(_ context.Context, path string) (domain.Document, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Document{}, fmt.Errorf("%s: %w", path, apperrors.ErrSessionNotFound)
		}
		return domain.Document{}, fmt.Errorf("read session file: %w", err)
	}
	var doc domain.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("%s: %w: %v", path, apperrors.ErrInvalidDocument, err)
	}
	return doc, nil
}

// List reads only the header fields of each *.json file. Files that
// fail to parse are still listed, marked unreadable, so the user can
// see and delete them.
func (s *FileDocumentStore) List(_ context.Context) ([]domain.Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Summary{}, nil
		}
		return nil, fmt.Errorf("read sessions dir: %w", err)
	}
	summaries := make([]domain.Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		summary := domain.Summary{Filename: entry.Name(), Path: path}
		var header struct {
			Version string `json:"version"`
			SavedAt string `json:"saved_at"`
		}
		payload, err := os.ReadFile(path)
		if err == nil {
			err = json.Unmarshal(payload, &header)
		}
		if err != nil {
			summary.SavedAt = domain.UnreadableSavedAt
		} else {
			summary.SavedAt = header.SavedAt
			summary.Version = header.Version
			// Parseable documents without header fields still list;
			// they predate the header or were written by hand.
			if summary.SavedAt == "" {
				summary.SavedAt = domain.UnknownSavedAt
			}
			if summary.Version == "" {
				summary.Version = domain.SchemaVersion
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *FileDocumentStore) Delete(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, apperrors.ErrSessionNotFound)
		}
		return fmt.Errorf("delete session file: %w", err)
	}
	return nil
}
