package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Manage Xcode file templates"
	MsgVersionShort    = "Print version information"
	MsgListShort       = "List a level of the template hierarchy"
	MsgSearchShort     = "Search templates"
	MsgShowShort       = "Show every detail of matching templates"
	MsgMkdirShort      = "Create a directory for a repository URL"
	MsgRmdirShort      = "Remove the directory of a repository URL"
	MsgRemoveShort     = "Remove template bundles"
	MsgConfigShort     = "Print the configuration"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoMatch        = "no templates match %q"
	MsgRemoveTitle    = "The following templates will be removed:"
	MsgRemoveDeclined = "Nothing removed."

	// Error messages
	MsgErrEmptyQuery  = "a non-empty query is required"
	MsgErrNoCommand   = "no command specified"
	MsgErrParseURL    = "invalid repository url %q"
	MsgErrRemoveCount = "%d of %d removals failed"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Print the commands instead of running them"
	MsgFlagForce    = "Do not ask for confirmation"
	MsgFlagFormat   = "Output format: auto, term, text, json or yaml"
	MsgFlagDefaults = "Print the commented default configuration file"
	MsgFlagPath     = "Print the configuration file path"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/search-long.txt
	msgSearchLongRaw string
	MsgSearchLong    = strings.TrimSpace(msgSearchLongRaw)

	//go:embed msgs/search-example.txt
	msgSearchExampleRaw string
	MsgSearchExample    = strings.TrimRight(msgSearchExampleRaw, "\n")

	//go:embed msgs/mkdir-long.txt
	msgMkdirLongRaw string
	MsgMkdirLong    = strings.TrimSpace(msgMkdirLongRaw)

	//go:embed msgs/rmdir-long.txt
	msgRmdirLongRaw string
	MsgRmdirLong    = strings.TrimSpace(msgRmdirLongRaw)

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
