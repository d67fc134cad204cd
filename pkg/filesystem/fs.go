package filesystem

import "io/fs"

// FS is the filesystem interface required to catalog templates
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}
