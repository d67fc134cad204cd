// Package confirmations asks the user to approve destructive operations.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/xctemplates/pkg/errors"
)

// ConsoleDialog reads y/n answers from an input stream
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog reading from in and prompting on out
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm lists items under title and asks for approval. Anything other
// than y/yes declines, including end of input.
func (d *ConsoleDialog) Confirm(title string, items []string) (bool, error) {
	fmt.Fprintf(d.out, "%s\n", title)
	for _, item := range items {
		fmt.Fprintf(d.out, "└── %s\n", item)
	}
	fmt.Fprint(d.out, "Continue? [y/N]: ")

	line, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrInternal, "failed to read user input")
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
