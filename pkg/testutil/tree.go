package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/xctemplates/pkg/filesystem"
	"github.com/arthur-debert/xctemplates/pkg/paths"
	"github.com/spf13/afero"
)

// Tree is a template hierarchy rooted in a temporary home directory
type Tree struct {
	t     *testing.T
	Home  string
	Paths *paths.Paths
}

// NewTree creates an empty catalog root under a fresh home directory
func NewTree(t *testing.T) *Tree {
	t.Helper()

	home := t.TempDir()
	p := paths.New(home)
	CreateDir(t, p.Root())

	return &Tree{t: t, Home: home, Paths: p}
}

// Root returns the catalog root
func (tr *Tree) Root() string {
	return tr.Paths.Root()
}

// FS returns the real filesystem the tree lives on
func (tr *Tree) FS() filesystem.FS {
	return filesystem.NewOS()
}

// AddDir creates a directory below the root
func (tr *Tree) AddDir(elem ...string) string {
	tr.t.Helper()
	return CreateDir(tr.t, tr.Root(), elem...)
}

// AddFile creates a file below the root
func (tr *Tree) AddFile(rel, content string) string {
	tr.t.Helper()
	return CreateFile(tr.t, tr.Root(), rel, content)
}

// AddTemplate creates host/user/repository/<name>.xctemplate with a
// TemplateInfo.plist and returns the bundle path.
func (tr *Tree) AddTemplate(host, user, repository, name string) string {
	tr.t.Helper()
	bundle := tr.AddDir(host, user, repository, name+paths.TemplateExtension)
	CreateFile(tr.t, bundle, paths.TemplateInfoFile, PlistFor(name+" template"))
	return bundle
}

// MemTree is a template hierarchy on an in-memory filesystem
type MemTree struct {
	t     *testing.T
	Fs    afero.Fs
	Paths *paths.Paths
}

// NewMemTree creates an empty in-memory catalog rooted at /home/test
func NewMemTree(t *testing.T) *MemTree {
	t.Helper()

	mt := &MemTree{t: t, Fs: afero.NewMemMapFs(), Paths: paths.New("/home/test")}
	if err := mt.Fs.MkdirAll(mt.Paths.Root(), 0755); err != nil {
		t.Fatalf("Failed to create root: %v", err)
	}
	return mt
}

// FS returns the filesystem view of the tree
func (mt *MemTree) FS() filesystem.FS {
	return filesystem.NewAferoFS(mt.Fs)
}

// AddDir creates a directory below the root
func (mt *MemTree) AddDir(elem ...string) string {
	mt.t.Helper()
	path := filepath.Join(append([]string{mt.Paths.Root()}, elem...)...)
	if err := mt.Fs.MkdirAll(path, 0755); err != nil {
		mt.t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// AddFile creates a file below the root
func (mt *MemTree) AddFile(rel, content string) string {
	mt.t.Helper()
	path := filepath.Join(mt.Paths.Root(), rel)
	if err := afero.WriteFile(mt.Fs, path, []byte(content), 0644); err != nil {
		mt.t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// AddTemplate creates a bundle with a TemplateInfo.plist
func (mt *MemTree) AddTemplate(host, user, repository, name string) string {
	mt.t.Helper()
	bundle := mt.AddDir(host, user, repository, name+paths.TemplateExtension)
	mt.AddFile(filepath.Join(host, user, repository, name+paths.TemplateExtension, paths.TemplateInfoFile), PlistFor(name+" template"))
	return bundle
}
