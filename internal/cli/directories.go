package cli

import (
	"context"
	"net/url"
	"strings"

	"github.com/arthur-debert/xctemplates/pkg/errors"
	"github.com/arthur-debert/xctemplates/pkg/operations"
	"github.com/arthur-debert/xctemplates/pkg/ui/display"
	"github.com/spf13/cobra"
)

// parseRepositoryURL accepts full URLs and scheme-less host/user/repository
func parseRepositoryURL(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrParseURL, raw)
	}
	return u, nil
}

func newMkdirCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "mkdir <url>",
		Short:   MsgMkdirShort,
		Long:    MsgMkdirLong,
		Example: "  xctemplates mkdir github.com/alice/ios-templates",
		GroupID: "directories",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirectoryOperation(cmd, opts, args[0], (*operations.Operations).MakeDirectory)
		},
	}
}

func newRmdirCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rmdir <url>",
		Short:   MsgRmdirShort,
		Long:    MsgRmdirLong,
		Example: "  xctemplates rmdir https://github.com/alice/ios-templates",
		GroupID: "directories",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirectoryOperation(cmd, opts, args[0], (*operations.Operations).RemoveDirectory)
		},
	}
}

type urlOperation func(*operations.Operations, context.Context, *url.URL) *operations.Result

func runDirectoryOperation(cmd *cobra.Command, opts *globalOptions, raw string, op urlOperation) error {
	a, err := newApp(cmd, opts)
	if err != nil {
		return err
	}

	u, err := parseRepositoryURL(raw)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	r := op(a.operations, ctx, u)
	out, err := r.Wait(ctx)
	if err != nil {
		return err
	}

	a.catalog.Invalidate()
	return a.renderer.RenderResult(display.NewOperationView(r, out, opts.dryRun))
}
