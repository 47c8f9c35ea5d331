package types

// Stage is the shader stage a geometry material file provides
type Stage string

const (
	StageVertex   Stage = "vert"
	StageFragment Stage = "frag"
)

// MaterialFile is a filename classified as a geometry material shader file,
// following gm.<material>.<variant>.<stage>
type MaterialFile struct {
	Name     string `json:"name" yaml:"name"`
	Material string `json:"material" yaml:"material"`
	Variant  string `json:"variant" yaml:"variant"`
	Stage    Stage  `json:"stage" yaml:"stage"`
}

// Identity is what two files must share to form a pair
type Identity struct {
	Material string `json:"material" yaml:"material"`
	Variant  string `json:"variant" yaml:"variant"`
}

// Identity returns the material identity of the file
func (m MaterialFile) Identity() Identity {
	return Identity{Material: m.Material, Variant: m.Variant}
}

// String renders the identity the way it appears inside a filename
func (i Identity) String() string {
	return i.Material + "." + i.Variant
}

// Pair is a vertex and fragment file sharing one material identity
type Pair struct {
	Identity Identity `json:"identity" yaml:"identity"`
	Vertex   string   `json:"vertex" yaml:"vertex"`
	Fragment string   `json:"fragment" yaml:"fragment"`
}
