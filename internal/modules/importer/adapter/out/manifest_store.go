package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fmtrack/internal/modules/importer/domain"
	importerout "fmtrack/internal/modules/importer/port/out"
)

// FileManifestStore reads plugin manifests from
// <data>/plugins/plugins.json. A missing file means no plugins are
// registered.
type FileManifestStore struct {
	dataPath string
}

func NewFileManifestStore(dataPath string) importerout.ManifestStore {
	return &FileManifestStore{dataPath: dataPath}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	f, err := os.Open(filepath.Join(s.dataPath, "plugins", "plugins.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read plugin manifest store: %w", err)
	}
	defer f.Close()

	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	var manifests []domain.Manifest
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode plugin manifests: %w", err)
	}
	for i := range manifests {
		manifests[i].Binary = s.resolveBinary(manifests[i].Binary)
	}
	return manifests, nil
}

// resolveBinary anchors relative binary paths at the data directory so
// a manifest can ship alongside the binary it points at.
func (s *FileManifestStore) resolveBinary(binary string) string {
	if binary == "" || filepath.IsAbs(binary) {
		return binary
	}
	return filepath.Clean(filepath.Join(s.dataPath, binary))
}
