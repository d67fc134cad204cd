package catalog

import (
	"sync"

	"github.com/arthur-debert/xctemplates/pkg/filesystem"
	"github.com/arthur-debert/xctemplates/pkg/logging"
	"github.com/arthur-debert/xctemplates/pkg/paths"
	"github.com/arthur-debert/xctemplates/pkg/template"
	"github.com/rs/zerolog"
)

// Level is a tier of the template hierarchy
type Level int

const (
	LevelHost Level = iota
	LevelUser
	LevelRepository
	LevelTemplate
)

// String returns the plural noun used for a level on the command line
func (l Level) String() string {
	switch l {
	case LevelHost:
		return "hosts"
	case LevelUser:
		return "users"
	case LevelRepository:
		return "repositories"
	case LevelTemplate:
		return "templates"
	default:
		return "unknown"
	}
}

// ParseLevel parses the plural or singular name of a level
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "hosts", "host":
		return LevelHost, true
	case "users", "user":
		return LevelUser, true
	case "repositories", "repository", "repos", "repo":
		return LevelRepository, true
	case "templates", "template":
		return LevelTemplate, true
	default:
		return 0, false
	}
}

// Loader turns a bundle path into a Template
type Loader interface {
	Load(path string) *template.Template
}

// Stats counts the entries of each level
type Stats struct {
	Hosts        int `json:"hosts" yaml:"hosts"`
	Users        int `json:"users" yaml:"users"`
	Repositories int `json:"repositories" yaml:"repositories"`
	Templates    int `json:"templates" yaml:"templates"`
}

// Catalog is the lazily built index of the template hierarchy. Each level
// is computed at most once until Invalidate; all methods are safe for
// concurrent use.
type Catalog struct {
	fs     filesystem.FS
	root   string
	loader Loader
	logger zerolog.Logger

	mu            sync.Mutex
	hosts         []string
	users         []string
	repositories  []string
	templatePaths []string
	templates     []*template.Template
}

// New creates a Catalog over the hierarchy rooted at p.Root(). A nil
// loader builds templates with template.New and no metadata.
func New(fsys filesystem.FS, p *paths.Paths, loader Loader) *Catalog {
	return &Catalog{
		fs:     fsys,
		root:   p.Root(),
		loader: loader,
		logger: logging.GetLogger("catalog"),
	}
}

// Root returns the directory the hierarchy is read from
func (c *Catalog) Root() string {
	return c.root
}

// HostPaths returns the host directories
func (c *Catalog) HostPaths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.hostLevel())
}

// UserPaths returns the user directories of every host
func (c *Catalog) UserPaths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.userLevel())
}

// RepositoryPaths returns the repository directories of every user
func (c *Catalog) RepositoryPaths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.repositoryLevel())
}

// TemplatePaths returns the template bundles of every repository
func (c *Catalog) TemplatePaths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.templatePathLevel())
}

// Templates returns one Template per TemplatePaths entry, in the same order
func (c *Catalog) Templates() []*template.Template {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.templateLevel())
}

// Paths returns the entries of the given level
func (c *Catalog) Paths(level Level) []string {
	switch level {
	case LevelHost:
		return c.HostPaths()
	case LevelUser:
		return c.UserPaths()
	case LevelRepository:
		return c.RepositoryPaths()
	default:
		return c.TemplatePaths()
	}
}

// Stats builds the whole catalog and counts each level
func (c *Catalog) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hosts:        len(c.hostLevel()),
		Users:        len(c.userLevel()),
		Repositories: len(c.repositoryLevel()),
		Templates:    len(c.templateLevel()),
	}
}

// Invalidate drops every cached level; the next access rebuilds from disk.
// Call it after creating or removing directories.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hosts, c.users, c.repositories, c.templatePaths, c.templates = nil, nil, nil, nil, nil
	c.logger.Debug().Msg("Catalog invalidated")
}

// The level builders below require c.mu to be held. A nil slice means
// "not built"; a built level is always non-nil.

func (c *Catalog) hostLevel() []string {
	if c.hosts == nil {
		c.hosts = ListChildren(c.fs, c.root, true)
		c.logger.Debug().Int("count", len(c.hosts)).Msg("Discovered hosts")
	}
	return c.hosts
}

func (c *Catalog) userLevel() []string {
	if c.users == nil {
		c.users = flatten(c.fs, c.hostLevel(), true)
		c.logger.Debug().Int("count", len(c.users)).Msg("Discovered users")
	}
	return c.users
}

func (c *Catalog) repositoryLevel() []string {
	if c.repositories == nil {
		c.repositories = flatten(c.fs, c.userLevel(), true)
		c.logger.Debug().Int("count", len(c.repositories)).Msg("Discovered repositories")
	}
	return c.repositories
}

func (c *Catalog) templatePathLevel() []string {
	if c.templatePaths == nil {
		candidates := flatten(c.fs, c.repositoryLevel(), false)
		bundles := make([]string, 0, len(candidates))
		for _, candidate := range candidates {
			if paths.IsTemplateBundle(candidate) {
				bundles = append(bundles, candidate)
			}
		}
		c.templatePaths = bundles
		c.logger.Debug().Int("count", len(bundles)).Msg("Discovered template bundles")
	}
	return c.templatePaths
}

func (c *Catalog) templateLevel() []*template.Template {
	if c.templates == nil {
		done := logging.LogOperationStart(c.logger, "catalog.templates")
		bundles := c.templatePathLevel()
		templates := make([]*template.Template, len(bundles))
		for i, bundle := range bundles {
			if c.loader != nil {
				templates[i] = c.loader.Load(bundle)
			} else {
				templates[i] = template.New(bundle)
			}
		}
		c.templates = templates
		done()
	}
	return c.templates
}

func flatten(fsys filesystem.FS, parents []string, excludeBundles bool) []string {
	children := []string{}
	for _, parent := range parents {
		children = append(children, ListChildren(fsys, parent, excludeBundles)...)
	}
	return children
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
