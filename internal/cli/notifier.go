package cli

import (
	"fmt"
	"io"
	"os"
)

// ConsoleNotifier renders planner signals on the terminal. Task list
// changes are silent here; commands print their own confirmation, so a
// generic "tasks changed" line would only add noise.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier creates a notifier writing to stdout.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{out: os.Stdout}
}

func (n *ConsoleNotifier) TasksChanged() {}

func (n *ConsoleNotifier) ValidationFailed(message string) {
	fmt.Fprintln(n.out, message)
}

func (n *ConsoleNotifier) ImportCompleted(accepted, rejected int) {
	fmt.Fprintf(n.out, "Import completed: %d task(s) added, %d record(s) rejected.\n", accepted, rejected)
}
