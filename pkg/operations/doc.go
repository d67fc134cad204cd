// Package operations creates and removes directories in the template
// hierarchy by running external mkdir and rm commands.
//
// Every operation returns a *Result immediately and runs its process on
// its own goroutine. The Result resolves exactly once, to the command's
// standard output or to an error with code ErrProcessFailure (or
// ErrInvalidInput when the target could not be computed).
//
// Cancellation: the context given to an operation bounds the process and
// cancelling it kills the process. Dropping a Result, or giving up in
// Result.Wait, does not.
//
// Operations never touch a catalog.Catalog; callers invalidate their
// catalog after a successful operation.
package operations
