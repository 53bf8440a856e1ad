package cli

import (
	"os"

	"campusplanner/internal/app"
)

// SearchCommand handles the search command
type SearchCommand struct {
	planner *app.Planner
}

// NewSearchCommand creates a new search command handler
func NewSearchCommand(planner *app.Planner) *SearchCommand {
	return &SearchCommand{planner: planner}
}

// Execute runs the search command
func (c *SearchCommand) Execute(args []string) error {
	matches := c.planner.Search(args[0])
	printMatches(os.Stdout, matches)
	return nil
}
