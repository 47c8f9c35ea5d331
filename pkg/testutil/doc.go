// Package testutil provides utilities for testing geommat components.
//
// Key components:
//   - NewTestFS / NewShaderFS: afero backed in-memory filesystems
//   - ShaderDir: an isolated real directory with logging redirected
//   - CreateFile / CreateDir / CreateSymlink: real filesystem fixtures
//
// Tests that only classify or pair names should not touch a filesystem at
// all; scanner tests use the in-memory FS; CLI tests use ShaderDir.
package testutil
