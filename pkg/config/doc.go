// Package config handles configuration management for geommat.
// It layers the embedded defaults, an optional .geommat.toml in the working
// directory, GEOMMAT_ environment variables and command-line overrides,
// using koanf.
package config
