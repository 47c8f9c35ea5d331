package find

import (
	"github.com/arthur-debert/geommat/pkg/config"
	"github.com/arthur-debert/geommat/pkg/errors"
	"github.com/arthur-debert/geommat/pkg/filesystem"
	"github.com/arthur-debert/geommat/pkg/logging"
	"github.com/arthur-debert/geommat/pkg/scanner"
	"github.com/arthur-debert/geommat/pkg/types"
)

// FindOptions defines the options for the Find command.
type FindOptions struct {
	// Name is the geometry material to look for.
	Name string
	// Config supplies the naming convention and scan directory.
	Config *config.Config
	// FS is read through; the OS filesystem when nil.
	FS types.FS
}

// Find scans the configured directory and stops at the first complete
// vertex/fragment pair for the named material.
func Find(opts FindOptions) (*types.FindResult, error) {
	log := logging.GetLogger("commands.find")
	log.Debug().Str("command", "Find").Str("name", opts.Name).Msg("Executing command")

	if opts.Name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "material name must not be empty")
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	result, err := scanner.New(fs, cfg.Convention()).FindFirstPair(cfg.Scan.Dir, opts.Name)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Find").Bool("found", result.Found).Int("scanned", result.Scanned).Msg("Command finished")
	return result, nil
}
