package paths

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/xctemplates/pkg/errors"
	"github.com/arthur-debert/xctemplates/pkg/logging"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed layout. These are dictated by Xcode and are not configurable;
// only the whole root may be overridden (see NewWithRoot).
const (
	// TemplateExtension marks a directory as a template bundle
	TemplateExtension = ".xctemplate"

	// TemplateInfoFile is the metadata file inside a template bundle
	TemplateInfoFile = "TemplateInfo.plist"
)

// baseSegments are joined onto the home directory to form the catalog root
var baseSegments = []string{"Library", "Developer", "Xcode", "Templates", "File Templates"}

var (
	homeOnce sync.Once
	homeDir  string
)

// HomeDirectory returns the current user's home directory. It is resolved
// once per process and never fails.
func HomeDirectory() string {
	homeOnce.Do(func() {
		homeDir = resolveHome(xdg.Home)
	})
	return homeDir
}

// resolveHome picks the first usable home directory: the platform value,
// os.UserHomeDir, $HOME, and finally the working directory.
func resolveHome(platform string) string {
	if platform != "" {
		return platform
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}

	if home := os.Getenv(EnvHome); home != "" {
		return home
	}

	cwd, _ := os.Getwd()
	logger := logging.GetLogger("paths")
	logger.Warn().
		Str("fallback", cwd).
		Msg("Unable to determine home directory, using working directory")
	return cwd
}

// BasePath returns the catalog root under the process home directory
func BasePath() string {
	return basePathFor(HomeDirectory())
}

func basePathFor(home string) string {
	return filepath.Join(append([]string{home}, baseSegments...)...)
}

// Paths composes locations inside the template hierarchy
type Paths struct {
	home string
	root string
}

// New creates Paths rooted at the standard location under home
func New(home string) *Paths {
	home = filepath.Clean(home)
	return &Paths{home: home, root: basePathFor(home)}
}

// NewWithRoot creates Paths whose catalog root is overridden. The home
// directory is still used as the working directory of external commands.
// An empty root falls back to the standard location.
func NewWithRoot(home, root string) *Paths {
	p := New(home)
	if root != "" {
		p.root = filepath.Clean(expandHomeWith(root, p.home))
	}
	return p
}

// Default returns Paths for the process home directory
func Default() *Paths {
	return New(HomeDirectory())
}

// Home returns the home directory this instance was built for
func (p *Paths) Home() string {
	return p.home
}

// Root returns the catalog root (the parent of every host directory)
func (p *Paths) Root() string {
	return p.root
}

// PathFor joins the root with a host and optional user and repository
// segments, in order.
func (p *Paths) PathFor(host string, segments ...string) string {
	return filepath.Join(append([]string{p.root, host}, segments...)...)
}

// URLPath maps a URL onto the hierarchy: Root/<host>/<path>. The result
// must not escape the host directory.
func (p *Paths) URLPath(u *url.URL) (string, error) {
	if u == nil {
		return "", errors.New(errors.ErrInvalidInput, "url is required")
	}
	if err := ValidateSegment(u.Host); err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "invalid url host").
			WithDetail("url", u.String())
	}

	hostDir := p.PathFor(u.Host)
	target := filepath.Join(hostDir, filepath.FromSlash(u.Path))
	if !ContainsPath(hostDir, target) {
		return "", errors.New(errors.ErrInvalidInput, "url path escapes the host directory").
			WithDetail("url", u.String()).
			WithDetail("target", target)
	}
	return target, nil
}

// TemplatePath returns a bundle path unchanged once it is known to be a
// bundle inside the root. Bundle paths are already absolute and are never
// prefixed with a host.
func (p *Paths) TemplatePath(bundle string) (string, error) {
	if !IsTemplateBundle(bundle) || !ContainsPath(p.root, bundle) || filepath.Clean(bundle) == filepath.Clean(p.root) {
		return "", errors.New(errors.ErrInvalidInput, "not a template bundle inside the catalog").
			WithDetail("path", bundle).
			WithDetail("root", p.root)
	}
	return filepath.Clean(bundle), nil
}

// ExpandHome expands a leading ~ to the process home directory
func ExpandHome(path string) string {
	return expandHomeWith(path, HomeDirectory())
}

func expandHomeWith(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return filepath.Join(home, path[2:])
	}
	return path
}
