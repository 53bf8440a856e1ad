package cli

import (
	"os"

	"github.com/spf13/cobra"

	"campusplanner/internal/app"
)

// SortCommand handles the sort command
type SortCommand struct {
	planner *app.Planner
}

// NewSortCommand creates a new sort command handler
func NewSortCommand(planner *app.Planner) *SortCommand {
	return &SortCommand{planner: planner}
}

// Execute runs the sort command
func (c *SortCommand) Execute(cmd *cobra.Command, args []string) error {
	descending, _ := cmd.Flags().GetBool("desc")

	c.planner.Sort(args[0], !descending)
	printTasks(os.Stdout, c.planner.Tasks())
	return nil
}
