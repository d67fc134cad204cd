package cli

import (
	"github.com/arthur-debert/xctemplates/pkg/errors"
	"github.com/arthur-debert/xctemplates/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newSearchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "search [query]",
		Short:   MsgSearchShort,
		Long:    MsgSearchLong,
		Example: MsgSearchExample,
		GroupID: "catalog",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			list := display.NewTemplateList(query, a.catalog.Search(query))
			if len(list.Templates) == 0 {
				list.Suggestions = a.suggestions(query)
			}
			return a.renderer.RenderResult(list)
		},
	}
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "show <query>",
		Short:   MsgShowShort,
		GroupID: "catalog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			list := display.NewTemplateList(args[0], a.catalog.Search(args[0]))
			list.Detailed = true
			if len(list.Templates) == 0 {
				list.Suggestions = a.suggestions(args[0])
				if err := a.renderer.RenderResult(list); err != nil {
					return err
				}
				return errors.Newf(errors.ErrNotFound, MsgNoMatch, args[0])
			}
			return a.renderer.RenderResult(list)
		},
	}
}
