package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"campusplanner/internal/app"
)

// AddCommand handles the add command
type AddCommand struct {
	planner      *app.Planner
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(planner *app.Planner) *AddCommand {
	return &AddCommand{
		planner:      planner,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	input := formInputFromFlags(cmd, title)

	if err := c.planner.SubmitForm(ctx, input); err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	tasks := c.planner.Tasks()
	added := tasks[len(tasks)-1]
	fmt.Printf("Added task: %s (%s)\n", added.Title, added.ID)
	return nil
}

// formInputFromFlags builds a form submission from the task field flags.
func formInputFromFlags(cmd *cobra.Command, title string) app.FormInput {
	due, _ := cmd.Flags().GetString("due")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	duration, _ := cmd.Flags().GetString("duration")
	tag, _ := cmd.Flags().GetString("tag")

	startHour, startMinute := clockComponents(start)
	endHour, endMinute := clockComponents(end)

	return app.FormInput{
		Title:       title,
		DueDate:     due,
		StartHour:   startHour,
		StartMinute: startMinute,
		EndHour:     endHour,
		EndMinute:   endMinute,
		Duration:    duration,
		Tag:         tag,
	}
}

// clockComponents splits an HH:MM value into its components. A value with
// no colon yields an empty minute, which the planner treats as no time.
func clockComponents(clock string) (hour, minute string) {
	if clock == "" {
		return "", ""
	}
	hour, minute, _ = strings.Cut(clock, ":")
	return hour, minute
}
