package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"campusplanner/internal/app"
	"campusplanner/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	planner      *app.Planner
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(planner *app.Planner) *DeleteCommand {
	return &DeleteCommand{
		planner:      planner,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	id := args[0]

	task := findTask(c.planner, id)
	if task == nil {
		return c.errorHandler.HandleSimple(errors.NewNotFoundError("task", id))
	}

	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed {
		fmt.Printf("Delete task %q? [y/N]: ", task.Title)
		var input string
		fmt.Fscanln(os.Stdin, &input)
		confirmed = strings.EqualFold(input, "y") || strings.EqualFold(input, "yes")
	}

	c.planner.RequestDelete(id)
	if !c.planner.ConfirmDelete(ctx, confirmed) {
		fmt.Println("Delete cancelled.")
		return nil
	}

	fmt.Printf("Deleted task: %s\n", task.Title)
	return nil
}

// findTask looks a task up by id in the planner's live list.
func findTask(planner *app.Planner, id string) *taskRef {
	for _, task := range planner.Tasks() {
		if task.ID == id {
			return &taskRef{ID: task.ID, Title: task.Title}
		}
	}
	return nil
}

// taskRef carries the fields the delete flow needs after the task itself
// may already be gone from the store.
type taskRef struct {
	ID    string
	Title string
}
