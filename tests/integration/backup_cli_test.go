// CLI integration tests for the gestoque backup commands.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBackupCreateAndRestore(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunGestoque("product", "add", "--name", "Caneca", "--price", "10.00", "--stock", "5", "--json")
	product := ParseJSON[Product](t, result.Stdout)
	env.MustRunGestoque("sale", "record", "--item", product.ID+"=2")

	result = env.MustRunGestoque("backup", "create")
	if !strings.Contains(result.Stdout, "Backup written to") {
		t.Fatalf("unexpected create output: %s", result.Stdout)
	}

	backupDir := filepath.Join(env.DataDir, "backups")
	entries, err := os.ReadDir(backupDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one backup file in %s: %v", backupDir, err)
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "backup-produtos-") || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected backup filename %q", name)
	}

	doc := ParseJSON[BackupFile](t, readFile(t, filepath.Join(backupDir, name)))
	if doc.Version != "1.0.0" || doc.Stats.TotalProducts != 1 {
		t.Errorf("unexpected backup document: %+v", doc)
	}

	// Mutate the live data, then restore the snapshot over it.
	env.MustRunGestoque("product", "remove", product.ID)

	// Without --yes the restore is a dry run.
	result = env.MustRunGestoque("backup", "restore", filepath.Join(backupDir, name))
	if !strings.Contains(result.Stdout, "--yes") {
		t.Errorf("expected confirmation prompt, got: %s", result.Stdout)
	}
	result = env.MustRunGestoque("product", "list", "--json")
	if got := ParseJSON[[]Product](t, result.Stdout); len(got) != 0 {
		t.Fatalf("dry-run restore must not write, got %d products", len(got))
	}

	env.MustRunGestoque("backup", "restore", filepath.Join(backupDir, name), "--yes")
	result = env.MustRunGestoque("product", "list", "--json")
	products := ParseJSON[[]Product](t, result.Stdout)
	if len(products) != 1 || products[0].StockQuantity != 3 || products[0].SoldQuantity != 2 {
		t.Errorf("restore must reproduce the snapshot, got %+v", products)
	}
}

func TestBackupRestoreRejectsCorruptFile(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunGestoque("init")

	path := filepath.Join(env.TempDir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"versao":"1.0.0"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	result := env.RunGestoque("backup", "restore", path, "--yes")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for corrupt backup, got %d", result.ExitCode)
	}
}

func TestBackupExport(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRunGestoque("product", "add", "--name", "Caneca", "--price", "10.00", "--stock", "5")
	env.MustRunGestoque("expense", "type-add", "--name", "Aluguel")

	outDir := filepath.Join(env.TempDir, "exports")
	env.MustRunGestoque("backup", "export", "--kind", "produtos", "--out", outDir)
	env.MustRunGestoque("backup", "export", "--kind", "despesas", "--out", outDir)

	entries, err := os.ReadDir(outDir)
	if err != nil || len(entries) != 2 {
		t.Fatalf("expected two export files: %v", err)
	}

	for _, e := range entries {
		content := readFile(t, filepath.Join(outDir, e.Name()))
		switch {
		case strings.HasPrefix(e.Name(), "produtos-"):
			products := ParseJSON[[]Product](t, content)
			if len(products) != 1 {
				t.Errorf("expected one exported product, got %d", len(products))
			}
		case strings.HasPrefix(e.Name(), "despesas-"):
			payload := ParseJSON[map[string]any](t, content)
			if _, ok := payload["tiposDespesa"]; !ok {
				t.Error("despesas export missing tiposDespesa")
			}
		default:
			t.Errorf("unexpected export file %q", e.Name())
		}
	}

	result := env.RunGestoque("backup", "export", "--kind", "clientes", "--out", outDir)
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for unknown kind, got %d", result.ExitCode)
	}
}

func TestBackupSchedulerViaCLI(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunGestoque("backup", "status")
	if !strings.Contains(result.Stdout, "Last backup: never") {
		t.Errorf("unexpected status output: %s", result.Stdout)
	}

	env.MustRunGestoque("backup", "configure", "--enabled", "--interval-days", "3", "--retain", "2")

	bad := env.RunGestoque("backup", "configure", "--interval-days", "0")
	if bad.ExitCode != 1 {
		t.Errorf("expected exit code 1 for zero interval, got %d", bad.ExitCode)
	}

	// Enabled with no prior backup: the pre-run poll fires on any command.
	env.MustRunGestoque("product", "list")

	result = env.MustRunGestoque("backup", "emergency", "list", "--json")
	backups := ParseJSON[[]map[string]any](t, result.Stdout)
	if len(backups) != 1 {
		t.Fatalf("expected one emergency backup after poll, got %d", len(backups))
	}

	result = env.MustRunGestoque("backup", "status")
	if !strings.Contains(result.Stdout, "Due now: false") {
		t.Errorf("poll must record the backup time: %s", result.Stdout)
	}

	autoFiles, err := filepath.Glob(filepath.Join(env.DataDir, "backups", "backup-auto-produtos-*.json"))
	if err != nil || len(autoFiles) != 1 {
		t.Errorf("expected one automatic backup file, got %v", autoFiles)
	}

	id, _ := backups[0]["id"].(string)
	env.MustRunGestoque("backup", "emergency", "remove", id)
	result = env.MustRunGestoque("backup", "emergency", "list", "--json")
	if got := ParseJSON[[]map[string]any](t, result.Stdout); len(got) != 0 {
		t.Errorf("expected empty emergency list after remove, got %d", len(got))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
