// Package types defines the core types and interfaces used throughout geommat.
// This includes the FS interface the scanner reads through, the shader Stage
// enumeration, the parsed MaterialFile and Pair values, and the result types
// returned by the find and list commands.
package types
