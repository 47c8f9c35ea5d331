package geommat

import (
	"strings"

	"github.com/arthur-debert/geommat/pkg/types"
)

// Tokenize splits fname on "." with the default convention
func Tokenize(fname string) []string {
	return DefaultConvention().Tokenize(fname)
}

// IsGeomMatFile reports whether fname is a geometry material shader file
// under the default convention
func IsGeomMatFile(fname string) bool {
	return DefaultConvention().IsGeomMatFile(fname)
}

// Parse classifies fname under the default convention
func Parse(fname string) (types.MaterialFile, bool) {
	return DefaultConvention().Parse(fname)
}

// IsGeomMatFile reports whether fname has exactly TokenCount tokens, starts
// with the namespace marker and ends with a known stage suffix
func (c Convention) IsGeomMatFile(fname string) bool {
	_, ok := c.Parse(fname)
	return ok
}

// Parse returns the structured view of a geometry material filename
func (c Convention) Parse(fname string) (types.MaterialFile, bool) {
	tokens := c.Tokenize(fname)

	if c.TokenCount < MinTokenCount || len(tokens) != c.TokenCount {
		return types.MaterialFile{}, false
	}
	if tokens[0] != c.Namespace {
		return types.MaterialFile{}, false
	}
	stage, ok := c.stage(tokens[len(tokens)-1])
	if !ok {
		return types.MaterialFile{}, false
	}

	return types.MaterialFile{
		Name:     fname,
		Material: tokens[1],
		Variant:  strings.Join(tokens[2:len(tokens)-1], c.Separator),
		Stage:    stage,
	}, true
}
