package scanner_test

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/geommat/pkg/errors"
	"github.com/arthur-debert/geommat/pkg/filesystem"
	"github.com/arthur-debert/geommat/pkg/geommat"
	"github.com/arthur-debert/geommat/pkg/scanner"
	"github.com/arthur-debert/geommat/pkg/testutil"
	"github.com/arthur-debert/geommat/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScanner(t *testing.T, names ...string) *scanner.Scanner {
	t.Helper()
	return scanner.New(testutil.NewShaderFS(t, "/shaders", names...), geommat.DefaultConvention())
}

func TestListFiles_SkipsDirectories(t *testing.T) {
	s := newScanner(t, "gm.wood.01.vert", "gm.wood.01.frag", "gm.dir.01.vert/", "include/")

	files, err := s.ListFiles("/shaders")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"gm.wood.01.vert", "gm.wood.01.frag"}, files)
}

func TestListFiles_EmptyDirectory(t *testing.T) {
	s := newScanner(t)

	files, err := s.ListFiles("/shaders")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListFiles_MissingDirectory(t *testing.T) {
	s := newScanner(t)

	_, err := s.ListFiles("/nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirRead))
	assert.Equal(t, "/nope", errors.GetErrorDetails(err)["dir"])
}

// deniedFS refuses every directory listing
type deniedFS struct {
	types.FS
}

func (deniedFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

func TestListFiles_PermissionDenied(t *testing.T) {
	s := scanner.New(deniedFS{FS: testutil.NewTestFS()}, geommat.DefaultConvention())

	_, err := s.ListFiles("/shaders")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirAccess))
	assert.Equal(t, "/shaders", errors.GetErrorDetails(err)["dir"])
}

func TestListFiles_LogsUnreadableEntries(t *testing.T) {
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	dir := t.TempDir()
	testutil.CreateSymlink(t, filepath.Join(dir, "missing"), filepath.Join(dir, "gm.wood.01.frag"))

	s := scanner.New(filesystem.NewOS(), geommat.DefaultConvention())
	files, err := s.ListFiles(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Contains(t, buf.String(), "Skipping unreadable entry")
	assert.Contains(t, buf.String(), "[FILE_STAT]")
}

func TestListFiles_FollowsSymlinksOnRealFS(t *testing.T) {
	dir := t.TempDir()
	target := testutil.CreateFile(t, dir, "real/gm.wood.01.frag", "")
	testutil.CreateSymlink(t, target, filepath.Join(dir, "gm.wood.01.frag"))
	testutil.CreateSymlink(t, filepath.Join(dir, "real"), filepath.Join(dir, "linkdir"))
	testutil.CreateSymlink(t, filepath.Join(dir, "missing"), filepath.Join(dir, "dangling"))
	testutil.CreateFile(t, dir, "gm.wood.01.vert", "")

	s := scanner.New(filesystem.NewOS(), geommat.DefaultConvention())
	files, err := s.ListFiles(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"gm.wood.01.frag", "gm.wood.01.vert"}, files)
}

func TestFindFirstPair(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		material string
		found    bool
		pair     *types.Pair
	}{
		{
			name:     "pair present",
			files:    []string{"readme.md", "gm.wood.01.vert", "gm.wood.01.frag"},
			material: "wood",
			found:    true,
			pair: &types.Pair{
				Identity: types.Identity{Material: "wood", Variant: "01"},
				Vertex:   "gm.wood.01.vert",
				Fragment: "gm.wood.01.frag",
			},
		},
		{
			name:     "only one stage",
			files:    []string{"gm.wood.01.vert", "gm.wood.02.frag"},
			material: "wood",
			found:    false,
		},
		{
			name:     "pair of another material is ignored",
			files:    []string{"gm.stone.01.vert", "gm.stone.01.frag"},
			material: "wood",
			found:    false,
		},
		{
			name:     "empty name matches any material",
			files:    []string{"gm.stone.01.vert", "gm.stone.01.frag"},
			material: "",
			found:    true,
			pair: &types.Pair{
				Identity: types.Identity{Material: "stone", Variant: "01"},
				Vertex:   "gm.stone.01.vert",
				Fragment: "gm.stone.01.frag",
			},
		},
		{
			name:     "no files",
			files:    nil,
			material: "wood",
			found:    false,
		},
		{
			name:     "directory named like a shader does not pair",
			files:    []string{"gm.wood.01.vert", "gm.wood.01.frag/"},
			material: "wood",
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScanner(t, tt.files...)

			result, err := s.FindFirstPair("/shaders", tt.material)
			require.NoError(t, err)
			assert.Equal(t, tt.found, result.Found)
			assert.Equal(t, tt.pair, result.Pair)
			assert.Equal(t, tt.material, result.Name)
			assert.Equal(t, "/shaders", result.Dir)
		})
	}
}

func TestFindFirstPair_StopsAtFirstMatch(t *testing.T) {
	// afero lists names sorted, so gm.a.01.frag is classified first
	s := newScanner(t, "gm.a.01.frag", "gm.a.01.vert", "gm.a.02.frag", "gm.a.02.vert", "zzz.txt")

	result, err := s.FindFirstPair("/shaders", "a")
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, 1, result.Scanned)
	assert.Equal(t, "01", result.Pair.Identity.Variant)
}

func TestFindFirstPair_ScansEverythingWithoutMatch(t *testing.T) {
	s := newScanner(t, "a.txt", "b.txt", "gm.wood.01.vert")

	result, err := s.FindFirstPair("/shaders", "wood")
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Nil(t, result.Pair)
	assert.Equal(t, 3, result.Scanned)
}

func TestFindFirstPair_DirectoryError(t *testing.T) {
	s := newScanner(t)

	result, err := s.FindFirstPair("/missing", "wood")
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirRead))
}

func TestFindFirstPair_CustomConvention(t *testing.T) {
	conv := geommat.DefaultConvention()
	conv.Vertex = "vs"
	conv.Fragment = "fs"

	s := scanner.New(testutil.NewShaderFS(t, "/shaders", "gm.wood.01.vs", "gm.wood.01.fs"), conv)

	result, err := s.FindFirstPair("/shaders", "wood")
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, "gm.wood.01.vs", result.Pair.Vertex)
	assert.Equal(t, "gm.wood.01.fs", result.Pair.Fragment)
}

func TestListMaterials(t *testing.T) {
	s := newScanner(t,
		"gm.wood.01.vert", "gm.wood.01.frag",
		"gm.stone.01.vert",
		"texture.diffuse.png",
	)

	result, err := s.ListMaterials("/shaders")
	require.NoError(t, err)

	assert.Equal(t, "/shaders", result.Dir)
	require.Len(t, result.Entries, 3)

	paired := map[string]string{}
	for _, e := range result.Entries {
		paired[e.Name] = e.Counterpart
	}
	assert.Equal(t, map[string]string{
		"gm.wood.01.vert":  "gm.wood.01.frag",
		"gm.wood.01.frag":  "gm.wood.01.vert",
		"gm.stone.01.vert": "",
	}, paired)

	require.Len(t, result.Pairs, 1)
	assert.Equal(t, "wood", result.Pairs[0].Identity.Material)
}

func TestListMaterials_NoMaterials(t *testing.T) {
	s := newScanner(t, "notes.txt")

	result, err := s.ListMaterials("/shaders")
	require.NoError(t, err)
	assert.NotNil(t, result.Entries)
	assert.Empty(t, result.Entries)
	assert.Empty(t, result.Pairs)
}
