package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/geommat/pkg/filesystem"
	"github.com/arthur-debert/geommat/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewShaderFS creates an in-memory filesystem holding dir with one empty
// shader source per name. Names ending in "/" become directories.
func NewShaderFS(t *testing.T, dir string, names ...string) types.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		if name[len(name)-1] == '/' {
			if err := mem.MkdirAll(path, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", path, err)
			}
			continue
		}
		if err := afero.WriteFile(mem, path, []byte("#version 460\n"), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}

	return filesystem.NewAferoFS(mem)
}
