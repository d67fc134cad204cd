// Package cli implements the xctemplates command line.
package cli

import (
	"embed"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/xctemplates/internal/version"
	"github.com/arthur-debert/xctemplates/pkg/cobrax/topics"
	"github.com/arthur-debert/xctemplates/pkg/errors"
	"github.com/arthur-debert/xctemplates/pkg/logging"
	"github.com/arthur-debert/xctemplates/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalOptions holds the persistent flags
type globalOptions struct {
	verbosity int
	dryRun    bool
	force     bool
	format    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "xctemplates",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&opts.force, "force", false, MsgFlagForce)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "catalog", Title: "CATALOG:"})
	rootCmd.AddGroup(&cobra.Group{ID: "directories", Title: "DIRECTORIES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newMkdirCmd(opts))
	rootCmd.AddCommand(newRmdirCmd(opts))
	rootCmd.AddCommand(newRemoveCmd(opts))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	helpTopics, _ := fs.Sub(topicFiles, "topics")
	_ = topics.InitializeWithOptions(rootCmd, helpTopics, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(!stdoutIsTerminal() || os.Getenv("NO_COLOR") != ""),
	})
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// PrintError reports err on w, styled when w is a color terminal
func PrintError(w io.Writer, err error) {
	r, rerr := ui.NewRenderer(ui.FormatAuto, w)
	if rerr != nil {
		return
	}
	_ = r.RenderError(err)
}
