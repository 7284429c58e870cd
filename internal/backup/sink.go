package backup

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirSink writes backup files into a backups/ directory under a base
// path.
type DirSink struct {
	base string
}

// NewDirSink returns a DirSink rooted at base.
func NewDirSink(base string) *DirSink {
	return &DirSink{base: base}
}

// ResolveDir creates and returns <base>/backups.
func (s *DirSink) ResolveDir() (string, error) {
	dir := filepath.Join(s.base, "backups")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}
	return dir, nil
}

// WriteBackupFile writes content to name inside dir.
func (s *DirSink) WriteBackupFile(dir, name string, content []byte) error {
	return os.WriteFile(filepath.Join(dir, name), content, 0o644)
}
