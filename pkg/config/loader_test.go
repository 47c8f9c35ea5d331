package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/geommat/pkg/errors"
	"github.com/arthur-debert/geommat/pkg/geommat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every GEOMMAT_ variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, EnvPrefix) {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(LoadOptions{Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "gm", cfg.Naming.Namespace)
	assert.Equal(t, ".", cfg.Naming.Separator)
	assert.Equal(t, 4, cfg.Naming.TokenCount)
	assert.Equal(t, "vert", cfg.Stages.Vertex)
	assert.Equal(t, "frag", cfg.Stages.Fragment)
	assert.Equal(t, ".", cfg.Scan.Dir)
	assert.Equal(t, "auto", cfg.Output.Format)

	assert.Equal(t, geommat.DefaultConvention(), cfg.Convention())
}

func TestDefault_MatchesLoadWithoutSources(t *testing.T) {
	clearEnv(t)

	loaded, err := Load(LoadOptions{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, loaded, Default())
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, ".geommat.toml", `
[stages]
vertex = "vs"
fragment = "fs"
`)

	cfg, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "vs", cfg.Stages.Vertex)
	assert.Equal(t, "fs", cfg.Stages.Fragment)
	assert.Equal(t, "gm", cfg.Naming.Namespace, "untouched keys keep defaults")
}

func TestLoad_DotFileWinsOverPlainFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, ".geommat.toml", "[naming]\nnamespace = \"dot\"\n")
	writeConfig(t, dir, "geommat.toml", "[naming]\nnamespace = \"plain\"\n")

	cfg, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "dot", cfg.Naming.Namespace)
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "geommat.toml", "[naming\nnamespace = ")

	_, err := Load(LoadOptions{Dir: dir})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "geommat.toml", "[scan]\ndir = \"from-file\"\n")

	t.Setenv("GEOMMAT_SCAN_DIR", "from-env")
	t.Setenv("GEOMMAT_NAMING_TOKEN_COUNT", "5")

	cfg, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Scan.Dir)
	assert.Equal(t, 5, cfg.Naming.TokenCount)
}

func TestLoad_EmptyEnvIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEOMMAT_SCAN_DIR", "")

	cfg, err := Load(LoadOptions{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Scan.Dir)
}

func TestLoad_OverridesWin(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEOMMAT_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(LoadOptions{
		Dir: t.TempDir(),
		Overrides: map[string]interface{}{
			"output.format": "json",
			"scan.dir":      "assets/shaders",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "assets/shaders", cfg.Scan.Dir)
}

func TestLoad_ValidationFailure(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "geommat.toml", "[stages]\nvertex = \"glsl\"\nfragment = \"glsl\"\n")

	_, err := Load(LoadOptions{Dir: dir})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env   string
		value string
		want  string
	}{
		{"GEOMMAT_SCAN_DIR", "x", "scan.dir"},
		{"GEOMMAT_NAMING_TOKEN_COUNT", "4", "naming.token_count"},
		{"GEOMMAT_STAGES_VERTEX", "vs", "stages.vertex"},
		{"GEOMMAT_SCAN_DIR", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env+"="+tt.value, func(t *testing.T) {
			got, _ := envKey(tt.env, tt.value)
			assert.Equal(t, tt.want, got)
		})
	}
}
