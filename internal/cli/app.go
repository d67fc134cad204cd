package cli

import (
	"github.com/arthur-debert/xctemplates/pkg/catalog"
	"github.com/arthur-debert/xctemplates/pkg/config"
	"github.com/arthur-debert/xctemplates/pkg/executor"
	"github.com/arthur-debert/xctemplates/pkg/filesystem"
	"github.com/arthur-debert/xctemplates/pkg/logging"
	"github.com/arthur-debert/xctemplates/pkg/operations"
	"github.com/arthur-debert/xctemplates/pkg/paths"
	"github.com/arthur-debert/xctemplates/pkg/template"
	"github.com/arthur-debert/xctemplates/pkg/ui"
	"github.com/spf13/cobra"
)

// app wires configuration, the catalog and operations for one command
type app struct {
	opts       *globalOptions
	cfg        *config.Config
	paths      *paths.Paths
	catalog    *catalog.Catalog
	operations *operations.Operations
	renderer   ui.Renderer
}

func newApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	logger := logging.GetLogger("cli")

	cfg, err := config.LoadConfiguration()
	if err != nil {
		return nil, err
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = opts.format
	}
	f, err := ui.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(f, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	p := paths.NewWithRoot(paths.HomeDirectory(), cfg.Paths.Root)
	fsys := filesystem.NewOS()

	var inspector template.RepoInspector
	if cfg.Catalog.InspectGit {
		inspector = template.GitInspector{}
	}

	ops := operations.New(p, executor.NewExecRunner(), operations.Options{
		DryRun:  opts.dryRun,
		Timeout: cfg.Operations.Timeout,
		Env:     cfg.Operations.Env,
	})

	logger.Debug().
		Str("root", p.Root()).
		Str("format", f.String()).
		Bool("dryRun", opts.dryRun).
		Msg("Application initialized")

	return &app{
		opts:       opts,
		cfg:        cfg,
		paths:      p,
		catalog:    catalog.New(fsys, p, template.NewLoader(fsys, inspector)),
		operations: ops,
		renderer:   renderer,
	}, nil
}

// suggestions returns "did you mean" identifiers when enabled
func (a *app) suggestions(query string) []string {
	if !a.cfg.Search.Suggestions {
		return nil
	}
	return catalog.Suggest(a.catalog.Templates(), query, a.cfg.Search.SuggestionLimit)
}
