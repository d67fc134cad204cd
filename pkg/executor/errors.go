package executor

import (
	"errors"
	"fmt"
)

// ErrTimeout is the cause recorded when a command exceeds its deadline.
var ErrTimeout = errors.New("command timeout")

// Stages at which a command can fail
const (
	StageStart     = "start"
	StageExecution = "execution"
)

// CommandError represents a failed external command (launch or non-zero exit).
type CommandError struct {
	Cmd    string
	Stage  string
	Cause  error
	Stderr string
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command %s failed at %s: %v: %s", e.Cmd, e.Stage, e.Cause, e.Stderr)
	}
	return fmt.Sprintf("command %s failed at %s: %v", e.Cmd, e.Stage, e.Cause)
}

func (e *CommandError) Unwrap() error { return e.Cause }
