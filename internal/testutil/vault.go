// Package testutil provides reusable test utilities for sb tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calebmoore/sb/internal/config"
)

// TestVault builds a temporary vault directory for tests.
type TestVault struct {
	Path  string
	t     *testing.T
	files map[string]string
	bare  bool
}

// NewTestVault creates a new test vault builder.
// Call Build() to create the actual vault directory.
func NewTestVault(t *testing.T) *TestVault {
	t.Helper()
	return &TestVault{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file to the vault, path relative to the vault root.
func (v *TestVault) WithFile(path, content string) *TestVault {
	v.files[path] = content
	return v
}

// WithoutMarker skips creating the vault marker directory, for tests
// exercising validation failures.
func (v *TestVault) WithoutMarker() *TestVault {
	v.bare = true
	return v
}

// Build creates the vault directory, the marker subdirectory, and all
// configured files.
func (v *TestVault) Build() *TestVault {
	v.t.Helper()

	v.Path = v.t.TempDir()

	if !v.bare {
		if err := os.MkdirAll(filepath.Join(v.Path, config.MarkerDir), 0755); err != nil {
			v.t.Fatalf("failed to create marker directory: %v", err)
		}
	}

	for path, content := range v.files {
		v.writeFile(path, content)
	}

	return v
}

func (v *TestVault) writeFile(relPath, content string) {
	v.t.Helper()
	fullPath := filepath.Join(v.Path, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		v.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		v.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file from the vault.
func (v *TestVault) ReadFile(relPath string) string {
	v.t.Helper()
	content, err := os.ReadFile(filepath.Join(v.Path, relPath))
	if err != nil {
		v.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists in the vault.
func (v *TestVault) FileExists(relPath string) bool {
	v.t.Helper()
	_, err := os.Stat(filepath.Join(v.Path, relPath))
	return err == nil
}
