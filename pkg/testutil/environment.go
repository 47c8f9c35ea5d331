package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/geommat/pkg/logging"
)

// ShaderDir is an isolated real directory populated with shader files
type ShaderDir struct {
	Root    string
	LogFile string
}

// NewShaderDir creates a temp directory holding the given files, isolates
// logging and geommat environment configuration, and changes the working
// directory into it for the duration of the test.
func NewShaderDir(t *testing.T, names ...string) *ShaderDir {
	t.Helper()

	base := t.TempDir()
	root := CreateDir(t, base, "shaders")
	logFile := filepath.Join(base, "state", "geommat.log")

	t.Setenv(logging.LogFileEnv, logFile)
	t.Setenv("GEOMMAT_SCAN_DIR", "")
	t.Setenv("GEOMMAT_OUTPUT_FORMAT", "")
	t.Setenv("NO_COLOR", "1")
	t.Chdir(root)

	for _, name := range names {
		CreateFile(t, root, name, "#version 460\n")
	}

	return &ShaderDir{Root: root, LogFile: logFile}
}

// Add creates more shader files in the directory
func (d *ShaderDir) Add(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		CreateFile(t, d.Root, name, "#version 460\n")
	}
}
