package list

import (
	"github.com/arthur-debert/geommat/pkg/config"
	"github.com/arthur-debert/geommat/pkg/filesystem"
	"github.com/arthur-debert/geommat/pkg/logging"
	"github.com/arthur-debert/geommat/pkg/scanner"
	"github.com/arthur-debert/geommat/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	// Config supplies the naming convention and scan directory.
	Config *config.Config
	// FS is read through; the OS filesystem when nil.
	FS types.FS
	// PairedOnly drops files without a counterpart.
	PairedOnly bool
}

// List classifies every file of the configured directory.
func List(opts ListOptions) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "List").Msg("Executing command")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	result, err := scanner.New(fs, cfg.Convention()).ListMaterials(cfg.Scan.Dir)
	if err != nil {
		return nil, err
	}

	if opts.PairedOnly {
		paired := result.Entries[:0]
		for _, e := range result.Entries {
			if e.Paired() {
				paired = append(paired, e)
			}
		}
		result.Entries = paired
	}

	log.Info().Str("command", "List").Int("entryCount", len(result.Entries)).Int("pairCount", len(result.Pairs)).Msg("Command finished")
	return result, nil
}
