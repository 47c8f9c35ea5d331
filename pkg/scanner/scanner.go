package scanner

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/geommat/pkg/errors"
	"github.com/arthur-debert/geommat/pkg/geommat"
	"github.com/arthur-debert/geommat/pkg/logging"
	"github.com/arthur-debert/geommat/pkg/types"
)

// Scanner lists a directory and classifies its files against a naming convention.
// The scan is FLAT: only the immediate children of the directory are looked at.
type Scanner struct {
	fs         types.FS
	convention geommat.Convention
}

// New creates a Scanner reading through filesystem
func New(filesystem types.FS, convention geommat.Convention) *Scanner {
	return &Scanner{fs: filesystem, convention: convention}
}

// ListFiles returns the names of the regular files directly inside dir, in
// listing order. Symlinks count when they resolve to a regular file.
func (s *Scanner) ListFiles(dir string) ([]string, error) {
	logger := logging.GetLogger("scanner").With().Str("dir", dir).Logger()

	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrPermission) {
			return nil, errors.Wrap(err, errors.ErrDirAccess, "permission denied reading directory").
				WithDetail("dir", dir)
		}
		return nil, errors.Wrap(err, errors.ErrDirRead, "failed to read directory").
			WithDetail("dir", dir)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		mode := entry.Type()

		if mode.IsRegular() {
			files = append(files, name)
			continue
		}

		if mode.IsDir() {
			continue
		}

		// Symlinks and other irregular entries count when they resolve to a regular file
		path := filepath.Join(dir, name)
		info, err := s.fs.Stat(path)
		if err != nil {
			statErr := errors.Wrap(err, errors.ErrFileStat, "failed to stat entry").WithDetail("path", path)
			logger.Trace().Err(statErr).Str("file", name).Msg("Skipping unreadable entry")
			continue
		}
		if info.Mode().IsRegular() {
			files = append(files, name)
		}
	}

	logger.Debug().
		Int("entries", len(entries)).
		Int("files", len(files)).
		Msg("Listed directory")

	return files, nil
}

// FindFirstPair walks the listing of dir and stops at the first geometry
// material file of material name whose counterpart stage is also present.
// An empty name matches every material.
func (s *Scanner) FindFirstPair(dir, name string) (*types.FindResult, error) {
	logger := logging.GetLogger("scanner").With().
		Str("dir", dir).
		Str("name", name).
		Logger()
	done := logging.LogOperationStart(logger, "find")
	defer done()

	files, err := s.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	result := &types.FindResult{Name: name, Dir: dir}

	for _, f := range files {
		result.Scanned++

		mf, ok := s.convention.Parse(f)
		if !ok {
			continue
		}
		if name != "" && mf.Material != name {
			logger.Trace().Str("file", f).Msg("Material name does not match")
			continue
		}

		other, ok := s.convention.FindCounterpart(f, files)
		if !ok {
			logger.Trace().Str("file", f).Msg("No counterpart stage")
			continue
		}

		pair := &types.Pair{Identity: mf.Identity()}
		if mf.Stage == types.StageVertex {
			pair.Vertex, pair.Fragment = f, other
		} else {
			pair.Vertex, pair.Fragment = other, f
		}

		result.Found = true
		result.Pair = pair
		logger.Info().
			Str("vertex", pair.Vertex).
			Str("fragment", pair.Fragment).
			Msg("Found geometry material pair")
		return result, nil
	}

	logger.Info().Int("scanned", result.Scanned).Msg("No geometry material pair found")
	return result, nil
}

// ListMaterials classifies every file of dir and reports each geometry
// material file with its counterpart, plus the complete pairs
func (s *Scanner) ListMaterials(dir string) (*types.ListResult, error) {
	files, err := s.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	result := &types.ListResult{
		Dir:     dir,
		Entries: []types.ListEntry{},
		Pairs:   s.convention.Pairs(files),
	}

	for _, f := range files {
		mf, ok := s.convention.Parse(f)
		if !ok {
			continue
		}
		entry := types.ListEntry{MaterialFile: mf}
		if other, ok := s.convention.FindCounterpart(f, files); ok {
			entry.Counterpart = other
		}
		result.Entries = append(result.Entries, entry)
	}

	logger := logging.GetLogger("scanner")
	logger.Debug().
		Str("dir", dir).
		Int("materials", len(result.Entries)).
		Int("pairs", len(result.Pairs)).
		Msg("Listed geometry materials")

	return result, nil
}
