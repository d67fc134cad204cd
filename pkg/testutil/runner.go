package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/arthur-debert/xctemplates/pkg/executor"
)

// RecordingRunner is an executor.Runner that records every command and
// answers with a canned output or error. When Block is non-nil, Run waits
// for it to be closed (or for ctx to end) before answering.
type RecordingRunner struct {
	Output []byte
	Err    error
	Block  chan struct{}

	mu       sync.Mutex
	commands []executor.Command
}

// Run implements executor.Runner
func (r *RecordingRunner) Run(ctx context.Context, cmd executor.Command) ([]byte, error) {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()

	if r.Block != nil {
		select {
		case <-r.Block:
		case <-ctx.Done():
			cause := ctx.Err()
			if errors.Is(cause, context.DeadlineExceeded) {
				cause = executor.ErrTimeout
			}
			return nil, &executor.CommandError{Cmd: cmd.String(), Stage: executor.StageExecution, Cause: cause}
		}
	}
	return r.Output, r.Err
}

// Commands returns the commands run so far
func (r *RecordingRunner) Commands() []executor.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]executor.Command, len(r.commands))
	copy(out, r.commands)
	return out
}
