package cli

import (
	"os"

	"campusplanner/internal/app"
)

// ListCommand handles the list command
type ListCommand struct {
	planner *app.Planner
}

// NewListCommand creates a new list command handler
func NewListCommand(planner *app.Planner) *ListCommand {
	return &ListCommand{planner: planner}
}

// Execute runs the list command
func (c *ListCommand) Execute(args []string) error {
	printTasks(os.Stdout, c.planner.Tasks())
	return nil
}
