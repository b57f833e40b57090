package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	importerout "fmtrack/internal/modules/importer/adapter/out"
	"fmtrack/internal/modules/importer/domain"
)

func TestGRPCHostIntegrationPricetablePlugin(t *testing.T) {
	binPath, checksum := buildPricetablePlugin(t)
	manifest := domain.Manifest{
		Name:         "pricetable",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       checksum,
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityCommand, domain.CapabilityImport},
	}

	host := importerout.NewGRPCHost()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := host.CheckLifecycle(ctx, manifest); err != nil {
		t.Fatalf("check lifecycle: %v", err)
	}
	metadata, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if metadata.Name != "pricetable" {
		t.Fatalf("unexpected metadata name: %s", metadata.Name)
	}
	commands, err := host.ListCommands(ctx, manifest)
	if err != nil {
		t.Fatalf("list commands: %v", err)
	}
	if len(commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(commands))
	}

	csvPath := filepath.Join(t.TempDir(), "prices.csv")
	table := "art_nr,name,category,buy_price,sell_price\n" +
		"100001,Diesel,Fuel,1.50,0\n" +
		"100002,Dynamite,Explosives,12,0\n" +
		",Broken Row,,oops,0\n"
	if err := os.WriteFile(csvPath, []byte(table), 0o644); err != nil {
		t.Fatalf("write price table: %v", err)
	}

	execOut, err := host.Execute(ctx, manifest, domain.ExecuteRequest{
		CommandID: "columns",
		InputJSON: `{"source_path":"` + csvPath + `"}`,
		Context: domain.ExecuteContext{
			DataPath: t.TempDir(),
			Cwd:      t.TempDir(),
		},
	})
	if err != nil {
		t.Fatalf("execute command: %v", err)
	}
	if execOut.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", execOut.ExitCode, execOut.Stderr)
	}

	importOut, err := host.Import(ctx, manifest, domain.ImportRequest{
		SourcePath: csvPath,
		Context: domain.ExecuteContext{
			DataPath: t.TempDir(),
			Cwd:      t.TempDir(),
		},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal([]byte(importOut.RowsJSON), &rows); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(importOut.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", importOut.Warnings)
	}
}

func buildPricetablePlugin(t *testing.T) (string, string) {
	t.Helper()
	tmp := t.TempDir()
	binPath := filepath.Join(tmp, "pricetable-plugin")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/pricetable")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build pricetable plugin: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built plugin: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
