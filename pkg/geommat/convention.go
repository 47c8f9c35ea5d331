package geommat

import (
	"strings"

	"github.com/arthur-debert/geommat/pkg/types"
)

const (
	DefaultNamespace  = "gm"
	DefaultSeparator  = "."
	DefaultTokenCount = 4

	// MinTokenCount leaves room for namespace, material and stage
	MinTokenCount = 3
)

// Convention describes how geometry material filenames are built
type Convention struct {
	Namespace  string
	Separator  string
	TokenCount int
	Vertex     string
	Fragment   string
}

// DefaultConvention returns gm.<material>.<variant>.<vert|frag>
func DefaultConvention() Convention {
	return Convention{
		Namespace:  DefaultNamespace,
		Separator:  DefaultSeparator,
		TokenCount: DefaultTokenCount,
		Vertex:     string(types.StageVertex),
		Fragment:   string(types.StageFragment),
	}
}

// Tokenize splits fname on the convention separator. Empty segments are kept.
func (c Convention) Tokenize(fname string) []string {
	return strings.Split(fname, c.Separator)
}

// stage maps a suffix token to its stage
func (c Convention) stage(suffix string) (types.Stage, bool) {
	switch suffix {
	case c.Vertex:
		return types.StageVertex, true
	case c.Fragment:
		return types.StageFragment, true
	}
	return "", false
}

// Complement returns the other stage
func Complement(s types.Stage) types.Stage {
	if s == types.StageVertex {
		return types.StageFragment
	}
	return types.StageVertex
}
