// Package executor runs external commands.
//
// Commands run to completion under a context: cancellation or a deadline
// kills the process. Failures are reported as *CommandError, telling a
// process that could not start apart from one that exited with an error.
package executor
