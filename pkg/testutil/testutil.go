// Package testutil provides shared test helpers: an in-memory stream
// opener for descriptor parsing tests and a fixture builder that lays
// out a workspace tree on disk.
package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/modscan/modscan/pkg/paths"
)

// MemOpener is an in-memory descriptor.Opener. Paths are normalized to
// forward slashes, so tests can register and request them in either form.
type MemOpener struct {
	files map[string][]byte
}

// NewMemOpener creates an empty MemOpener
func NewMemOpener() *MemOpener {
	return &MemOpener{files: make(map[string][]byte)}
}

// Add registers file content under the given path and returns the
// opener for chaining
func (m *MemOpener) Add(path, content string) *MemOpener {
	m.files[paths.ToSlash(path)] = []byte(content)
	return m
}

// Open implements descriptor.Opener
func (m *MemOpener) Open(path string) (io.ReadCloser, error) {
	content, ok := m.files[paths.ToSlash(path)]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// WriteWorkspace creates a temporary workspace populated with the given
// files (relative slash paths mapped to content) and returns its root.
// The directory is removed when the test finishes.
func WriteWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return root
}
