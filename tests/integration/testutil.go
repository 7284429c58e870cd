// Package integration provides CLI integration tests for gestoque.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

var (
	// gestoqueBin is the path to the built gestoque binary.
	gestoqueBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetGestoqueBin sets the path to the gestoque binary (called from TestMain).
func SetGestoqueBin(path string) {
	gestoqueBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and
// data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment using the file backend.
func NewTestEnv(t *testing.T) *TestEnv {
	return newTestEnv(t, "file")
}

// NewTestEnvSQLite creates a new isolated test environment using the
// sqlite backend.
func NewTestEnvSQLite(t *testing.T) *TestEnv {
	return newTestEnv(t, "sqlite")
}

func newTestEnv(t *testing.T, backend string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build gestoque: %v", buildErr)
	}
	if gestoqueBin == "" {
		t.Fatal("gestoque binary not built (gestoqueBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: " + backend + "\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a gestoque command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunGestoque executes the gestoque CLI with the given arguments.
func (e *TestEnv) RunGestoque(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(gestoqueBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run gestoque: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunGestoque executes the gestoque CLI and fails the test if it
// returns non-zero.
func (e *TestEnv) MustRunGestoque(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunGestoque(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("gestoque %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Product mirrors the product wire shape for JSON parsing.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"nome"`
	Price         float64   `json:"preco"`
	StockQuantity int       `json:"quantidadeEstoque"`
	SoldQuantity  int       `json:"quantidadeVendida"`
	RegisteredAt  time.Time `json:"dataCadastro"`
}

// Sale mirrors the sale wire shape for JSON parsing.
type Sale struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"produtoId"`
	ProductName string    `json:"nomeProduto"`
	Quantity    int       `json:"quantidade"`
	UnitPrice   float64   `json:"precoUnitario"`
	TotalValue  float64   `json:"valorTotal"`
	Date        time.Time `json:"data"`
}

// ExpenseType mirrors the expense type wire shape for JSON parsing.
type ExpenseType struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

// Expense mirrors the expense wire shape for JSON parsing.
type Expense struct {
	ID          string  `json:"id"`
	TypeID      string  `json:"tipoId"`
	TypeName    string  `json:"nomeTipo"`
	Description string  `json:"descricao"`
	Amount      float64 `json:"valor"`
}

// BackupFile mirrors the full snapshot wire shape for JSON parsing.
type BackupFile struct {
	Version string `json:"versao"`
	Type    string `json:"tipo"`
	Data    struct {
		Products []Product `json:"produtos"`
		Sales    []Sale    `json:"vendas"`
	} `json:"dados"`
	Stats struct {
		TotalProducts int `json:"totalProdutos"`
	} `json:"estatisticas"`
}
