package operations

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/arthur-debert/xctemplates/pkg/errors"
	"github.com/arthur-debert/xctemplates/pkg/executor"
	"github.com/arthur-debert/xctemplates/pkg/logging"
	"github.com/arthur-debert/xctemplates/pkg/paths"
	"github.com/arthur-debert/xctemplates/pkg/template"
	"github.com/rs/zerolog"
)

// launcher is the program every command is run through, so the binaries
// are resolved from the inherited PATH.
const launcher = "env"

// Options tune how operations run
type Options struct {
	// DryRun logs the command and resolves with empty output
	DryRun bool
	// Timeout bounds each process; zero means no bound
	Timeout time.Duration
	// Env is appended to the inherited environment of each process
	Env []string
}

// Operations runs directory commands against the template hierarchy
type Operations struct {
	paths  *paths.Paths
	runner executor.Runner
	opts   Options
	logger zerolog.Logger
}

// New creates Operations rooted at p
func New(p *paths.Paths, runner executor.Runner, opts Options) *Operations {
	return &Operations{
		paths:  p,
		runner: runner,
		opts:   opts,
		logger: logging.GetLogger("operations"),
	}
}

// MakeDirectory runs `mkdir -p <root>/<host>/<path>`
func (o *Operations) MakeDirectory(ctx context.Context, target *url.URL) *Result {
	path, err := o.paths.URLPath(target)
	return o.launch(ctx, KindMakeDirectory, path, err, "mkdir", "-p")
}

// RemoveDirectory runs `rm -rf <root>/<host>/<path>`
func (o *Operations) RemoveDirectory(ctx context.Context, target *url.URL) *Result {
	path, err := o.paths.URLPath(target)
	return o.launch(ctx, KindRemoveDirectory, path, err, "rm", "-rf")
}

// RemoveTemplate runs `rm -rf <template path>`. The template path is
// already absolute and is used as is.
func (o *Operations) RemoveTemplate(ctx context.Context, t *template.Template) *Result {
	path, err := o.templateTarget(t)
	return o.launch(ctx, KindRemoveTemplate, path, err, "rm", "-rf")
}

// templateTarget refuses anything that is not a bundle inside the root
func (o *Operations) templateTarget(t *template.Template) (string, error) {
	if t == nil {
		return "", errors.New(errors.ErrInvalidInput, "template is required")
	}
	return o.paths.TemplatePath(t.Path)
}

func (o *Operations) launch(ctx context.Context, kind Kind, target string, prepErr error, args ...string) *Result {
	r := newResult(kind, target)
	logger := o.logger.With().
		Str("id", r.ID).
		Str("kind", string(kind)).
		Str("target", target).
		Logger()

	if prepErr != nil {
		logger.Debug().Err(prepErr).Msg("Operation rejected")
		r.resolve("", prepErr)
		return r
	}

	r.Command = executor.Command{
		Name: launcher,
		Args: append(args, target),
		Dir:  o.paths.Home(),
		Env:  o.opts.Env,
	}

	go o.run(ctx, r, logger)
	return r
}

func (o *Operations) run(ctx context.Context, r *Result, logger zerolog.Logger) {
	done := logging.LogOperationStart(logger, string(r.Kind))
	defer done()

	if o.opts.DryRun {
		logger.Info().Str("command", r.Command.String()).Msg("Dry run mode - command would be executed")
		r.resolve("", nil)
		return
	}

	if o.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.opts.Timeout)
		defer cancel()
	}

	out, err := o.runner.Run(ctx, r.Command)
	if err != nil {
		logger.Error().Err(err).Str("command", r.Command.String()).Msg("Operation failed")
		r.resolve("", errors.Wrapf(err, errors.ErrProcessFailure, "%s failed", r.Kind).
			WithDetail("operation", r.ID).
			WithDetail("target", r.Target).
			WithDetail("command", r.Command.String()))
		return
	}

	logger.Info().Msg("Operation succeeded")
	r.resolve(strings.ToValidUTF8(string(out), "\uFFFD"), nil)
}
