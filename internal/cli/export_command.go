package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"campusplanner/internal/app"
	"campusplanner/internal/errors"
	"campusplanner/internal/persistence"
)

// ExportCommand handles the export command
type ExportCommand struct {
	planner      *app.Planner
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(planner *app.Planner) *ExportCommand {
	return &ExportCommand{
		planner:      planner,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	var blob persistence.Blob
	var err error
	switch format {
	case "json":
		blob, err = c.planner.ExportJSON()
	case "csv":
		if withTimestamps, _ := cmd.Flags().GetBool("timestamps"); withTimestamps {
			columns := append(append([]string{}, persistence.DefaultCSVColumns...), "CreatedAt", "UpdatedAt")
			blob, err = c.planner.ExportCSV(columns...)
		} else {
			blob, err = c.planner.ExportCSV()
		}
	default:
		return errors.NewValidationError(fmt.Sprintf("unsupported export format: %s (expected json or csv)", format), nil)
	}

	if err == persistence.ErrNoTasks {
		fmt.Println("No tasks to export.")
		return nil
	}
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}

	path := blob.Name
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		path = output
	}
	if err := os.WriteFile(path, blob.Data, 0644); err != nil {
		return c.errorHandler.Handle("export tasks", errors.NewStorageError("write export file", err))
	}

	fmt.Printf("Exported %d task(s) to %s\n", len(c.planner.Tasks()), path)
	return nil
}
