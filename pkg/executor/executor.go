// Package executor runs external commands.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/xctemplates/pkg/logging"
	"github.com/rs/zerolog"
)

// Command describes a single process invocation
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one
	Dir string
	// Env is appended to the inherited environment
	Env []string
}

// Argv returns the name followed by the arguments
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command line for logs and error messages
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Runner runs a command to completion and returns its standard output
type Runner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner runs commands as OS processes
type ExecRunner struct {
	logger zerolog.Logger
}

// NewExecRunner creates a Runner backed by os/exec
func NewExecRunner() *ExecRunner {
	return &ExecRunner{logger: logging.GetLogger("executor")}
}

// Run starts the process, waits for it and returns stdout. Any failure is
// a *CommandError; cancelling ctx kills the process.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	logging.LogCommand(r.logger, cmd.Name, cmd.Args)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Start(); err != nil {
		return nil, &CommandError{Cmd: cmd.String(), Stage: StageStart, Cause: err}
	}

	if err := c.Wait(); err != nil {
		cause := err
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			cause = ErrTimeout
		case ctx.Err() != nil:
			cause = ctx.Err()
		}

		r.logger.Debug().
			Err(err).
			Str("command", cmd.String()).
			Str("stderr", stderr.String()).
			Msg("Command failed")

		return stdout.Bytes(), &CommandError{
			Cmd:    cmd.String(),
			Stage:  StageExecution,
			Cause:  cause,
			Stderr: strings.TrimSpace(stderr.String()),
		}
	}

	if stderr.Len() > 0 {
		r.logger.Debug().Str("stderr", stderr.String()).Msg("Command stderr")
	}
	return stdout.Bytes(), nil
}
