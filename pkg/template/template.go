// Package template models a discovered template bundle.
//
// A Template is derived from its bundle path
// (<root>/<host>/<user>/<repository>/<name>.xctemplate) and optionally
// enriched by a Loader with TemplateInfo.plist metadata and the git
// metadata of the repository it was cloned from.
package template

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/xctemplates/pkg/paths"
)

// Template is a single template bundle in the catalog
type Template struct {
	// Path is the absolute path of the bundle directory
	Path string

	// Name is the bundle name without its extension
	Name string

	// NameWithExtension is the bundle directory name
	NameWithExtension string

	// Host, User and Repository are the three hierarchy levels above the bundle
	Host       string
	User       string
	Repository string

	// RemoteRepoURL points at the repository the bundle came from, when known
	RemoteRepoURL *url.URL

	// RemoteFileURL points at the bundle inside RemoteRepoURL, when known
	RemoteFileURL *url.URL

	// Metadata read from TemplateInfo.plist
	Kind        string
	Description string
	Summary     string

	// Version is the short commit of the repository checkout, when known
	Version string
}

// New derives a Template from a bundle path. It performs no I/O; remote
// URLs are inferred from the host/user/repository names when the host
// looks like a domain.
func New(path string) *Template {
	path = filepath.Clean(path)
	repoDir := filepath.Dir(path)
	userDir := filepath.Dir(repoDir)
	hostDir := filepath.Dir(userDir)

	base := filepath.Base(path)
	t := &Template{
		Path:              path,
		Name:              strings.TrimSuffix(base, paths.TemplateExtension),
		NameWithExtension: base,
		Repository:        filepath.Base(repoDir),
		User:              filepath.Base(userDir),
		Host:              filepath.Base(hostDir),
	}

	if strings.Contains(t.Host, ".") {
		t.setRemote(&url.URL{
			Scheme: "https",
			Host:   t.Host,
			Path:   "/" + t.User + "/" + t.Repository,
		})
	}

	return t
}

// RepositoryDir returns the directory holding the bundle
func (t *Template) RepositoryDir() string {
	return filepath.Dir(t.Path)
}

// setRemote sets the repository URL and derives the bundle URL from it
func (t *Template) setRemote(repo *url.URL) {
	t.RemoteRepoURL = repo
	if repo == nil {
		t.RemoteFileURL = nil
		return
	}
	t.RemoteFileURL = repo.JoinPath("tree", "HEAD", t.NameWithExtension)
}

// Identifier returns host/user/repository/name
func (t *Template) Identifier() string {
	return strings.Join([]string{t.Host, t.User, t.Repository, t.Name}, "/")
}

// FormattedString renders the template for display. With all set the
// full host/user/repository/name identifier is used instead of the bare
// name; with version set the repository commit is appended when known.
func (t *Template) FormattedString(all, version bool) string {
	s := t.Name
	if all {
		s = t.Identifier()
	}
	if version && t.Version != "" {
		s = fmt.Sprintf("%s (%s)", s, t.Version)
	}
	return s
}

// String implements fmt.Stringer
func (t *Template) String() string {
	return t.FormattedString(true, false)
}
