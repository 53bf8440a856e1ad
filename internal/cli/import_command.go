package cli

import (
	"context"
	"os"
	"strings"

	"campusplanner/internal/app"
	"campusplanner/internal/errors"
)

// ImportCommand handles the import command
type ImportCommand struct {
	planner      *app.Planner
	errorHandler *ErrorHandler
}

// NewImportCommand creates a new import command handler
func NewImportCommand(planner *app.Planner) *ImportCommand {
	return &ImportCommand{
		planner:      planner,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context, args []string) error {
	path := args[0]

	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		return c.errorHandler.HandleSimple(
			errors.NewImportFormatError("Invalid file type. Please choose a JSON file.", nil))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return c.errorHandler.Handle("import tasks", errors.NewStorageError("read import file", err))
	}

	if _, err := c.planner.Import(ctx, raw); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	// The completion summary is printed by the notifier.
	return nil
}
