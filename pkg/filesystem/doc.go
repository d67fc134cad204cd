// Package filesystem provides the read-only filesystem view used to walk
// the template catalog.
//
// NewOS reads the real disk; NewAferoFS adapts any afero.Fs, which tests
// use with an in-memory filesystem.
package filesystem
