package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cheatnav/pkg/filesystem"
	"github.com/spf13/afero"
)

// MemoryFS is an in-memory filesystem.FS that can be seeded from tests.
type MemoryFS struct {
	filesystem.FS
	Afero afero.Fs
}

// NewMemoryFS creates an empty in-memory filesystem.
func NewMemoryFS() *MemoryFS {
	mem := afero.NewMemMapFs()
	return &MemoryFS{
		FS:    filesystem.NewAferoFS(mem),
		Afero: mem,
	}
}

// AddFile writes content at path, creating parent directories.
func (m *MemoryFS) AddFile(t *testing.T, path, content string) {
	t.Helper()
	if err := m.Afero.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := afero.WriteFile(m.Afero, path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// AddDir creates a directory and its parents.
func (m *MemoryFS) AddDir(t *testing.T, path string) {
	t.Helper()
	if err := m.Afero.MkdirAll(path, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

// ReadFile returns the content at path, failing the test if it is missing.
func (m *MemoryFS) ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(m.Afero, path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
