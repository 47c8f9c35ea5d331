package geommat

import (
	"sort"

	"github.com/arthur-debert/geommat/pkg/logging"
	"github.com/arthur-debert/geommat/pkg/types"
)

// IsGeomMatFilePair reports whether fname is a geometry material file whose
// counterpart stage is present in allFiles, under the default convention
func IsGeomMatFilePair(fname string, allFiles []string) bool {
	return DefaultConvention().IsGeomMatFilePair(fname, allFiles)
}

// FindCounterpart looks up the complementary stage of fname in allFiles,
// under the default convention
func FindCounterpart(fname string, allFiles []string) (string, bool) {
	return DefaultConvention().FindCounterpart(fname, allFiles)
}

// Pairs returns every complete pair in allFiles, under the default convention
func Pairs(allFiles []string) []types.Pair {
	return DefaultConvention().Pairs(allFiles)
}

// IsGeomMatFilePair reports whether fname is a geometry material file and
// another name in allFiles shares its material and variant with the
// complementary stage
func (c Convention) IsGeomMatFilePair(fname string, allFiles []string) bool {
	_, ok := c.FindCounterpart(fname, allFiles)
	return ok
}

// FindCounterpart returns the name in allFiles completing the pair of fname
func (c Convention) FindCounterpart(fname string, allFiles []string) (string, bool) {
	candidate, ok := c.Parse(fname)
	if !ok {
		return "", false
	}

	want := Complement(candidate.Stage)
	for _, other := range allFiles {
		if other == fname {
			continue
		}
		mf, ok := c.Parse(other)
		if !ok {
			continue
		}
		if mf.Stage == want && mf.Identity() == candidate.Identity() {
			logger := logging.GetLogger("geommat.pair")
			logger.Trace().
				Str("file", fname).
				Str("counterpart", other).
				Msg("counterpart found")
			return other, true
		}
	}

	return "", false
}

// Pairs groups allFiles by material identity and returns the groups that
// have both stages, ordered by identity
func (c Convention) Pairs(allFiles []string) []types.Pair {
	byIdentity := make(map[types.Identity]*types.Pair)

	for _, name := range allFiles {
		mf, ok := c.Parse(name)
		if !ok {
			continue
		}
		id := mf.Identity()
		p, exists := byIdentity[id]
		if !exists {
			p = &types.Pair{Identity: id}
			byIdentity[id] = p
		}
		switch mf.Stage {
		case types.StageVertex:
			if p.Vertex == "" {
				p.Vertex = name
			}
		case types.StageFragment:
			if p.Fragment == "" {
				p.Fragment = name
			}
		}
	}

	pairs := make([]types.Pair, 0, len(byIdentity))
	for _, p := range byIdentity {
		if p.Vertex != "" && p.Fragment != "" {
			pairs = append(pairs, *p)
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Identity.Material != pairs[j].Identity.Material {
			return pairs[i].Identity.Material < pairs[j].Identity.Material
		}
		return pairs[i].Identity.Variant < pairs[j].Identity.Variant
	})

	return pairs
}
