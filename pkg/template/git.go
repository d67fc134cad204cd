package template

import (
	"net/url"
	"strings"

	"github.com/arthur-debert/xctemplates/pkg/errors"
	"github.com/go-git/go-git/v5"
)

// RepoInfo is what a repository checkout tells us about its templates
type RepoInfo struct {
	// Remote is the origin URL normalized to https, nil when unknown
	Remote *url.URL

	// Commit is the abbreviated HEAD hash, empty when unknown
	Commit string
}

// RepoInspector reads git metadata from a repository directory
type RepoInspector interface {
	Inspect(dir string) (RepoInfo, error)
}

// GitInspector inspects repository checkouts with go-git
type GitInspector struct{}

const shortHashLen = 7

// Inspect opens dir as a git repository. Parent directories are not
// searched, so a catalog living inside another checkout (a dotfiles repo,
// say) does not inherit that checkout's metadata.
func (GitInspector) Inspect(dir string) (RepoInfo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: false})
	if err != nil {
		return RepoInfo{}, errors.Wrap(err, errors.ErrNotFound, "not a git repository").
			WithDetail("dir", dir)
	}

	var info RepoInfo
	if remote, err := repo.Remote(git.DefaultRemoteName); err == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			info.Remote = NormalizeRemote(urls[0])
		}
	}

	if head, err := repo.Head(); err == nil {
		hash := head.Hash().String()
		if len(hash) > shortHashLen {
			hash = hash[:shortHashLen]
		}
		info.Commit = hash
	}

	return info, nil
}

// NormalizeRemote converts a git remote (https, ssh:// or scp-like
// git@host:owner/repo.git) into a browsable https URL. Unrecognized
// remotes yield nil.
func NormalizeRemote(remote string) *url.URL {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return nil
	}

	if !strings.Contains(remote, "://") {
		// scp-like syntax: [user@]host:path
		at := strings.Index(remote, "@")
		colon := strings.Index(remote, ":")
		if colon <= at+1 {
			return nil
		}
		remote = "ssh://" + remote[:colon] + "/" + remote[colon+1:]
	}

	u, err := url.Parse(remote)
	if err != nil || u.Hostname() == "" {
		return nil
	}

	switch u.Scheme {
	case "http", "https", "ssh", "git":
	default:
		return nil
	}

	path := strings.TrimSuffix(strings.TrimSuffix(u.Path, "/"), ".git")
	if path == "" {
		return nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return &url.URL{Scheme: "https", Host: u.Hostname(), Path: path}
}
