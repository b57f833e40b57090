package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fmtrack/internal/modules/importer/domain"
	"fmtrack/internal/modules/importer/dto"
	"fmtrack/internal/modules/importer/service"
)

type fakeStore struct {
	manifests []domain.Manifest
}

func (s fakeStore) Load(context.Context) ([]domain.Manifest, error) {
	return s.manifests, nil
}

type fakeHost struct {
	commands []domain.CommandDescriptor
	rowsJSON string
	warnings []string
}

func (fakeHost) CheckLifecycle(context.Context, domain.Manifest) error { return nil }
func (fakeHost) GetMetadata(context.Context, domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: "fake", Version: "1"}, nil
}
func (h fakeHost) ListCommands(context.Context, domain.Manifest) ([]domain.CommandDescriptor, error) {
	return h.commands, nil
}
func (fakeHost) Execute(context.Context, domain.Manifest, domain.ExecuteRequest) (domain.ExecuteResult, error) {
	return domain.ExecuteResult{Stdout: "ok", ExitCode: 0}, nil
}
func (h fakeHost) Import(context.Context, domain.Manifest, domain.ImportRequest) (domain.ImportResult, error) {
	return domain.ImportResult{RowsJSON: h.rowsJSON, Warnings: h.warnings}, nil
}

func TestExecuteRejectsDisabledPlugin(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, false, []domain.Capability{domain.CapabilityCommand})
	svc := service.NewImporterService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{})
	_, err := svc.Execute(context.Background(), dto.ExecuteInput{PluginName: manifest.Name, CommandID: "refresh", DataPath: "/tmp", Cwd: "/tmp"})
	if !errors.Is(err, domain.ErrPluginDisabled) {
		t.Fatalf("expected ErrPluginDisabled, got %v", err)
	}
}

func TestImportRejectsMissingCapability(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityCommand})
	svc := service.NewImporterService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{})
	_, err := svc.Import(context.Background(), dto.ImportInput{PluginName: manifest.Name, SourcePath: "/tmp/prices.csv", DataPath: "/tmp", Cwd: "/tmp"})
	if !errors.Is(err, domain.ErrCapabilityMissing) {
		t.Fatalf("expected ErrCapabilityMissing, got %v", err)
	}
}

func TestExecuteRejectsUnknownCommand(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityCommand})
	svc := service.NewImporterService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{commands: []domain.CommandDescriptor{{ID: "other", Kind: domain.CommandKindCommand}}})
	_, err := svc.Execute(context.Background(), dto.ExecuteInput{PluginName: manifest.Name, CommandID: "refresh", DataPath: "/tmp", Cwd: "/tmp"})
	if !errors.Is(err, domain.ErrCommandNotFound) {
		t.Fatalf("expected ErrCommandNotFound, got %v", err)
	}
}

func TestExecuteSuccess(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityCommand})
	svc := service.NewImporterService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{commands: []domain.CommandDescriptor{{ID: "refresh", Kind: domain.CommandKindCommand}}})
	out, err := svc.Execute(context.Background(), dto.ExecuteInput{PluginName: manifest.Name, CommandID: "refresh", DataPath: "/tmp", Cwd: "/tmp", InputJSON: `{"v":1}`})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.ExitCode != 0 {
		t.Fatalf("unexpected exit code: %d", out.ExitCode)
	}
}

func TestImportReturnsRowsAndWarnings(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityImport})
	host := fakeHost{rowsJSON: `[{"art_nr":100001,"name":"Diesel","category":"Fuel"}]`, warnings: []string{"line 3: missing price"}}
	svc := service.NewImporterService(fakeStore{manifests: []domain.Manifest{manifest}}, host)
	result, err := svc.Import(context.Background(), dto.ImportInput{PluginName: manifest.Name, SourcePath: "/tmp/prices.csv", DataPath: "/tmp", Cwd: "/tmp"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.RowsJSON != host.rowsJSON {
		t.Fatalf("unexpected rows: %s", result.RowsJSON)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestImportRejectsInvalidRowsJSON(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Capability{domain.CapabilityImport})
	svc := service.NewImporterService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{rowsJSON: `[{"broken":`})
	_, err := svc.Import(context.Background(), dto.ImportInput{PluginName: manifest.Name, SourcePath: "/tmp/prices.csv", DataPath: "/tmp", Cwd: "/tmp"})
	if err == nil {
		t.Fatalf("expected invalid rows JSON error")
	}
}

func manifestWithBinary(t *testing.T, enabled bool, capabilities []domain.Capability) domain.Manifest {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "plugin-bin")
	if err := os.WriteFile(binPath, []byte("binary"), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	hash := sha256.Sum256([]byte("binary"))
	return domain.Manifest{
		Name:         "pricetable",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       hex.EncodeToString(hash[:]),
		Enabled:      enabled,
		Capabilities: capabilities,
	}
}
