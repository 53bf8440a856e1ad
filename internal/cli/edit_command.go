package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"campusplanner/internal/app"
	"campusplanner/internal/domain"
	"campusplanner/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	planner      *app.Planner
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(planner *app.Planner) *EditCommand {
	return &EditCommand{
		planner:      planner,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	id := args[0]

	task := c.planner.BeginEdit(id)
	if task == nil {
		return c.errorHandler.HandleSimple(errors.NewNotFoundError("task", id))
	}

	input := c.mergeFlags(cmd, task)

	if err := c.planner.SubmitForm(ctx, input); err != nil {
		c.planner.CancelEdit()
		return c.errorHandler.Handle("edit task", err)
	}

	fmt.Printf("Updated task: %s (%s)\n", input.Title, id)
	return nil
}

// mergeFlags builds a full form submission from the stored task, replacing
// only the fields whose flags were set. Changing a time without setting
// --duration blanks the duration so it is recomputed from the new times.
func (c *EditCommand) mergeFlags(cmd *cobra.Command, task *domain.Task) app.FormInput {
	flags := cmd.Flags()

	title := task.Title
	if flags.Changed("title") {
		title, _ = flags.GetString("title")
	}

	date, _ := domain.SplitDueTimestamp(task.DueDate)
	if flags.Changed("due") {
		date, _ = flags.GetString("due")
	}

	start := task.StartTime
	if flags.Changed("start") {
		start, _ = flags.GetString("start")
	}
	end := task.EndTime
	if flags.Changed("end") {
		end, _ = flags.GetString("end")
	}

	duration := strconv.Itoa(task.Duration)
	timesChanged := flags.Changed("start") || flags.Changed("end")
	if flags.Changed("duration") {
		duration, _ = flags.GetString("duration")
	} else if timesChanged && start != "" && end != "" {
		duration = ""
	}

	tag := task.Tag
	if flags.Changed("tag") {
		tag, _ = flags.GetString("tag")
	}

	startHour, startMinute := clockComponents(start)
	endHour, endMinute := clockComponents(end)

	return app.FormInput{
		Title:       title,
		DueDate:     date,
		StartHour:   startHour,
		StartMinute: startMinute,
		EndHour:     endHour,
		EndMinute:   endMinute,
		Duration:    duration,
		Tag:         tag,
	}
}
