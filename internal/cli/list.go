package cli

import (
	"github.com/arthur-debert/xctemplates/pkg/catalog"
	"github.com/arthur-debert/xctemplates/pkg/errors"
	"github.com/arthur-debert/xctemplates/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "list [hosts|users|repositories|templates]",
		Short:     MsgListShort,
		Long:      MsgListLong,
		GroupID:   "catalog",
		Aliases:   []string{"ls"},
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"hosts", "users", "repositories", "templates"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return a.renderer.RenderResult(&display.StatsView{
					Root:  a.paths.Root(),
					Stats: a.catalog.Stats(),
				})
			}

			level, ok := catalog.ParseLevel(args[0])
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, "unknown level %q", args[0]).
					WithDetail("valid", cmd.ValidArgs)
			}

			if level == catalog.LevelTemplate {
				return a.renderer.RenderResult(display.NewTemplateList("", a.catalog.Templates()))
			}
			return a.renderer.RenderResult(&display.PathList{
				Level: level.String(),
				Root:  a.paths.Root(),
				Paths: a.catalog.Paths(level),
			})
		},
	}
}
