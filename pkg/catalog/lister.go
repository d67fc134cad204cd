package catalog

import (
	"path/filepath"

	"github.com/arthur-debert/xctemplates/pkg/filesystem"
	"github.com/arthur-debert/xctemplates/pkg/logging"
	"github.com/arthur-debert/xctemplates/pkg/paths"
)

// ListChildren returns the non-hidden entries of dir as absolute paths,
// in directory order. With excludeBundles, template bundles are dropped
// so they are never mistaken for container directories. A directory that
// cannot be read yields no entries.
func ListChildren(fsys filesystem.FS, dir string, excludeBundles bool) []string {
	logger := logging.GetLogger("catalog.lister")

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		logger.Trace().Err(err).Str("dir", dir).Msg("Directory not listable, treating as empty")
		return []string{}
	}

	children := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		if paths.IsHidden(name) {
			logger.Trace().Str("name", name).Msg("Skipping hidden entry")
			continue
		}

		if excludeBundles && paths.IsTemplateBundle(name) {
			logger.Trace().Str("name", name).Msg("Skipping template bundle at container level")
			continue
		}

		children = append(children, filepath.Join(dir, name))
	}

	return children
}
