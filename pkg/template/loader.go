package template

import (
	"path/filepath"
	"sync"

	"github.com/arthur-debert/xctemplates/pkg/filesystem"
	"github.com/arthur-debert/xctemplates/pkg/logging"
	"github.com/arthur-debert/xctemplates/pkg/paths"
	"github.com/rs/zerolog"
)

// Loader builds Templates from bundle paths and enriches them with
// bundle and repository metadata. Missing or unreadable metadata is not
// an error: the template keeps the values New derived from its path.
type Loader struct {
	fs        filesystem.FS
	inspector RepoInspector
	logger    zerolog.Logger

	mu    sync.Mutex
	repos map[string]RepoInfo
}

// NewLoader creates a Loader. A nil inspector disables git inspection.
func NewLoader(fs filesystem.FS, inspector RepoInspector) *Loader {
	return &Loader{
		fs:        fs,
		inspector: inspector,
		logger:    logging.GetLogger("template.loader"),
		repos:     make(map[string]RepoInfo),
	}
}

// Load creates the Template for a bundle path
func (l *Loader) Load(path string) *Template {
	t := New(path)

	infoPath := filepath.Join(t.Path, paths.TemplateInfoFile)
	if data, err := l.fs.ReadFile(infoPath); err == nil {
		info, err := ParseInfo(data)
		if err != nil {
			l.logger.Debug().Err(err).Str("path", infoPath).Msg("Ignoring unreadable template info")
		} else {
			t.applyInfo(info)
		}
	}

	if repo, ok := l.repoInfo(t.RepositoryDir()); ok {
		if repo.Remote != nil {
			t.setRemote(repo.Remote)
		}
		t.Version = repo.Commit
	}

	l.logger.Trace().
		Str("path", t.Path).
		Str("name", t.Name).
		Str("version", t.Version).
		Msg("Loaded template")
	return t
}

// repoInfo inspects each repository directory once
func (l *Loader) repoInfo(dir string) (RepoInfo, bool) {
	if l.inspector == nil {
		return RepoInfo{}, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if info, ok := l.repos[dir]; ok {
		return info, true
	}

	info, err := l.inspector.Inspect(dir)
	if err != nil {
		l.logger.Trace().Err(err).Str("dir", dir).Msg("Repository has no git metadata")
	}
	l.repos[dir] = info
	return info, true
}
