package types

// FindResult is the outcome of a find invocation
type FindResult struct {
	Name    string `json:"name" yaml:"name"`
	Dir     string `json:"dir" yaml:"dir"`
	Found   bool   `json:"found" yaml:"found"`
	Pair    *Pair  `json:"pair,omitempty" yaml:"pair,omitempty"`
	Scanned int    `json:"scanned" yaml:"scanned"`
}

// ListEntry describes a single geometry material file found by list
type ListEntry struct {
	MaterialFile `yaml:",inline"`
	Counterpart  string `json:"counterpart,omitempty" yaml:"counterpart,omitempty"`
}

// Paired reports whether the file has a counterpart in the listing
func (e ListEntry) Paired() bool {
	return e.Counterpart != ""
}

// ListResult is the outcome of a list invocation
type ListResult struct {
	Dir     string      `json:"dir" yaml:"dir"`
	Entries []ListEntry `json:"entries" yaml:"entries"`
	Pairs   []Pair      `json:"pairs" yaml:"pairs"`
}

// GenConfigResult holds TOML produced by the config command
type GenConfigResult struct {
	ConfigContent string `json:"config" yaml:"config"`
}
