package config

import (
	"github.com/arthur-debert/geommat/pkg/errors"
	"github.com/arthur-debert/geommat/pkg/geommat"
)

// Config holds the effective geommat configuration
type Config struct {
	Naming Naming `koanf:"naming" toml:"naming"`
	Stages Stages `koanf:"stages" toml:"stages"`
	Scan   Scan   `koanf:"scan" toml:"scan"`
	Output Output `koanf:"output" toml:"output"`
}

// Naming describes the filename layout
type Naming struct {
	Namespace  string `koanf:"namespace" toml:"namespace"`
	Separator  string `koanf:"separator" toml:"separator"`
	TokenCount int    `koanf:"token_count" toml:"token_count"`
}

// Stages holds the suffix used for each shader stage
type Stages struct {
	Vertex   string `koanf:"vertex" toml:"vertex"`
	Fragment string `koanf:"fragment" toml:"fragment"`
}

// Scan controls which directory is listed
type Scan struct {
	Dir string `koanf:"dir" toml:"dir"`
}

// Output controls result rendering
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Convention builds the naming convention the classifier uses
func (c *Config) Convention() geommat.Convention {
	return geommat.Convention{
		Namespace:  c.Naming.Namespace,
		Separator:  c.Naming.Separator,
		TokenCount: c.Naming.TokenCount,
		Vertex:     c.Stages.Vertex,
		Fragment:   c.Stages.Fragment,
	}
}

// Validate rejects configurations the classifier cannot work with
func (c *Config) Validate() error {
	switch {
	case c.Naming.Namespace == "":
		return errors.New(errors.ErrConfigValid, "naming.namespace must not be empty")
	case c.Naming.Separator == "":
		return errors.New(errors.ErrConfigValid, "naming.separator must not be empty")
	case c.Naming.TokenCount < geommat.MinTokenCount:
		return errors.Newf(errors.ErrConfigValid, "naming.token_count must be at least %d", geommat.MinTokenCount).
			WithDetail("token_count", c.Naming.TokenCount)
	case c.Stages.Vertex == "" || c.Stages.Fragment == "":
		return errors.New(errors.ErrConfigValid, "stage suffixes must not be empty")
	case c.Stages.Vertex == c.Stages.Fragment:
		return errors.Newf(errors.ErrConfigValid, "vertex and fragment suffixes are both %q", c.Stages.Vertex)
	case c.Scan.Dir == "":
		return errors.New(errors.ErrConfigValid, "scan.dir must not be empty")
	}
	return nil
}
