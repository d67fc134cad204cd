// Package paths resolves the locations xctemplates works with.
//
// Templates live in a fixed four-level hierarchy under Xcode's user
// file-template directory:
//
//	~/Library/Developer/Xcode/Templates/File Templates/<host>/<user>/<repository>/<name>.xctemplate
//
// The home directory is resolved once per process. The platform facility
// (adrg/xdg, which consults the OS user database) is preferred, falling
// back to os.UserHomeDir and then $HOME.
//
// # Usage
//
//	p := paths.Default()
//	root := p.Root()                                   // .../File Templates
//	repo := p.PathFor("github.com", "alice", "templates")
//	target, err := p.URLPath(u)                        // Root/u.Host/u.Path
package paths
