package operations

import (
	"context"
	"sync"

	"github.com/arthur-debert/xctemplates/pkg/errors"
	"github.com/arthur-debert/xctemplates/pkg/executor"
	"github.com/google/uuid"
)

// Kind names an operation
type Kind string

const (
	KindMakeDirectory   Kind = "mkdir"
	KindRemoveDirectory Kind = "rmdir"
	KindRemoveTemplate  Kind = "remove"
)

// Result is the eventual outcome of one operation
type Result struct {
	// ID correlates log lines of one operation
	ID string
	// Kind is the operation that produced this result
	Kind Kind
	// Target is the directory acted upon; empty if it could not be computed
	Target string
	// Command is the process that was (or would have been) run
	Command executor.Command

	once   sync.Once
	done   chan struct{}
	output string
	err    error
}

func newResult(kind Kind, target string) *Result {
	return &Result{
		ID:     uuid.NewString(),
		Kind:   kind,
		Target: target,
		done:   make(chan struct{}),
	}
}

// resolve records the outcome; only the first call has any effect
func (r *Result) resolve(output string, err error) {
	r.once.Do(func() {
		r.output, r.err = output, err
		close(r.done)
	})
}

// Done is closed once the outcome is known
func (r *Result) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the outcome is known or ctx ends. Giving up does not
// stop the operation.
func (r *Result) Wait(ctx context.Context) (string, error) {
	select {
	case <-r.done:
		return r.output, r.err
	case <-ctx.Done():
		return "", errors.Wrap(ctx.Err(), errors.ErrCancelled, "stopped waiting for operation").
			WithDetail("operation", r.ID).
			WithDetail("target", r.Target)
	}
}
