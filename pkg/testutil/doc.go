// Package testutil provides helpers for testing xctemplates components.
//
// Key components:
//   - Tree: builds a template hierarchy (host/user/repository/bundle) in a
//     temporary home directory on the real filesystem
//   - MemTree: the same layout on an in-memory afero filesystem
//   - RecordingRunner: an executor.Runner that records commands instead of
//     spawning processes
package testutil
