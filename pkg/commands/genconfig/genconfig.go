package genconfig

import (
	"github.com/arthur-debert/geommat/pkg/config"
	"github.com/arthur-debert/geommat/pkg/logging"
	"github.com/arthur-debert/geommat/pkg/types"
)

// GenConfigOptions holds options for the config command
type GenConfigOptions struct {
	// Config is the effective configuration to render.
	Config *config.Config
	// Template renders the commented defaults instead, ready to save as .geommat.toml.
	Template bool
}

// GenConfig renders either the effective configuration or a config template
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	if opts.Template {
		logger.Debug().Msg("Rendering config template")
		return &types.GenConfigResult{ConfigContent: config.GenerateConfigContent()}, nil
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	content, err := config.Render(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("bytes", len(content)).Msg("Rendered effective config")
	return &types.GenConfigResult{ConfigContent: content}, nil
}
