package cli

import (
	"github.com/arthur-debert/xctemplates/pkg/errors"
	"github.com/arthur-debert/xctemplates/pkg/logging"
	"github.com/arthur-debert/xctemplates/pkg/operations"
	"github.com/arthur-debert/xctemplates/pkg/template"
	"github.com/arthur-debert/xctemplates/pkg/ui/confirmations"
	"github.com/arthur-debert/xctemplates/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newRemoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <query>",
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		Example: "  xctemplates remove github.com/alice/ios-templates/ViewModel",
		GroupID: "directories",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.remove")
			query := args[0]
			// The empty query matches every template
			if query == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrEmptyQuery)
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			// A full identifier names exactly one bundle
			var matches []*template.Template
			if t, ok := a.catalog.Find(query); ok {
				matches = []*template.Template{t}
			} else {
				matches = a.catalog.Search(query)
			}
			if len(matches) == 0 {
				return errors.Newf(errors.ErrNotFound, MsgNoMatch, query).
					WithDetail("suggestions", a.suggestions(query))
			}

			if !opts.force && !opts.dryRun {
				items := make([]string, len(matches))
				for i, t := range matches {
					items[i] = t.Path
				}
				dialog := confirmations.NewConsoleDialog(cmd.InOrStdin(), cmd.ErrOrStderr())
				ok, err := dialog.Confirm(MsgRemoveTitle, items)
				if err != nil {
					return err
				}
				if !ok {
					return a.renderer.RenderMessage(MsgRemoveDeclined)
				}
			}

			ctx := cmd.Context()
			results := make([]*operations.Result, len(matches))
			for i, t := range matches {
				results[i] = a.operations.RemoveTemplate(ctx, t)
			}

			var firstErr error
			failed := 0
			for _, r := range results {
				out, err := r.Wait(ctx)
				if err != nil {
					logger.Error().Err(err).Str("target", r.Target).Msg("Removal failed")
					failed++
					if firstErr == nil {
						firstErr = err
					}
					continue
				}
				if err := a.renderer.RenderResult(display.NewOperationView(r, out, opts.dryRun)); err != nil {
					return err
				}
			}

			a.catalog.Invalidate()
			if failed > 0 {
				return errors.Wrapf(firstErr, errors.ErrProcessFailure, MsgErrRemoveCount, failed, len(results))
			}
			return nil
		},
	}
}
