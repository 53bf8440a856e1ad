package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"campusplanner/internal/app"
	"campusplanner/internal/config"
	"campusplanner/internal/persistence"
	"campusplanner/internal/repository/sqlite"
	"campusplanner/internal/store"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	config  *config.Config
	planner *app.Planner
	repo    sqlite.SlotRepository
}

// NewRootCommand creates the root cobra command with global flags. The
// storage layer and planner are built in PersistentPreRunE, after flag
// overrides have been applied to the configuration.
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "planner",
		Short: "A command-line personal task planner",
		Long: `Campus Planner is a command-line application for managing tasks with
due dates, time slots, and tags.

FEATURES:
  • Add, edit, and delete tasks with validation
  • Time slots with automatic duration calculation (midnight wrap supported)
  • Search task titles by case-insensitive regular expression
  • Sort by due date, duration, title, or tag
  • Export to JSON or CSV; import JSON task lists
  • Fully configurable via config file, environment variables, and flags

EXAMPLES:
  planner add "Study Session" --due 2025-03-10 --start 09:00 --end 10:30 --tag Study
  planner list                               # Show all tasks
  planner edit 3f2a... --title "New title"   # Edit a task by id
  planner delete 3f2a...                     # Delete (asks for confirmation)
  planner search "^Study"                    # Filter by title pattern
  planner sort duration --desc               # Reorder the list
  planner export --format csv                # Write campusplanner.csv
  planner import backup.json                 # Merge a task list

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults
  The config file is ~/.campusplanner/config.toml, or $CAMPUS_PLANNER_CONFIG.
  A .env file in the working directory is honoured.

  Storage Configuration:
    CP_STORAGE_DIR                         Storage directory (default: ~/.campusplanner)
    CP_STORAGE_FILENAME                    Database filename (default: planner.db)
    CP_STORAGE_SLOT_KEY                    Task list slot key (default: campusplanner.tasks)
    CP_STORAGE_QUERY_TIMEOUT               Query timeout (default: 10s)
    CP_STORAGE_WRITE_TIMEOUT               Write timeout (default: 5s)

  Export Configuration:
    CP_EXPORT_JSON_FILENAME                JSON export filename (default: campusplanner.json)
    CP_EXPORT_CSV_FILENAME                 CSV export filename (default: campusplanner.csv)

  Application Configuration:
    CP_APP_TIMEOUT                         Application timeout (default: 60s)
    CP_APP_VERBOSE                         Enable verbose output (default: false)
    CP_DEBUG                               Enable debug logging (default: off)

GETTING HELP:
  planner [command] --help                 # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			return root.initPlanner()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	defer r.Close()
	return r.cmd.Execute()
}

// Close releases the storage layer if it was opened.
func (r *RootCommand) Close() error {
	if r.repo == nil {
		return nil
	}
	return r.repo.Close()
}

// initPlanner opens the configured storage and wires the planner over it.
// The stored task list is loaded before any command runs.
func (r *RootCommand) initPlanner() error {
	repo, err := config.CreateRepository(r.config)
	if err != nil {
		return err
	}
	r.repo = repo

	gateway := persistence.NewGatewayWithFilenames(
		repo,
		r.config.Storage.SlotKey,
		r.config.Export.JSONFilename,
		r.config.Export.CSVFilename,
	)
	r.planner = app.NewPlanner(store.New(), gateway, NewConsoleNotifier())

	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()
	r.planner.LoadTasks(ctx)
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("storage-dir", "", "Storage directory (overrides CP_STORAGE_DIR)")
	flags.String("storage-filename", "", "Database filename (overrides CP_STORAGE_FILENAME)")
	flags.String("slot-key", "", "Task list slot key (overrides CP_STORAGE_SLOT_KEY)")

	// Export configuration
	flags.String("json-filename", "", "JSON export filename (overrides CP_EXPORT_JSON_FILENAME)")
	flags.String("csv-filename", "", "CSV export filename (overrides CP_EXPORT_CSV_FILENAME)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides CP_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides CP_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new task with a due date, optional time slot, and tag.

With both --start and --end set and no --duration, the duration is
computed from the times, wrapping past midnight when the end precedes
the start.

Examples:
  planner add "Study Session" --due 2025-03-10 --start 09:00 --end 10:30 --tag Study
  planner add "Lab report" --due 2025-03-12 --duration 120 --tag Chemistry`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			addHandler := NewAddCommand(r.planner)
			return addHandler.Execute(ctx, cmd, args)
		},
	}
	addTaskFlags(addCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "List every task in the current view order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listHandler := NewListCommand(r.planner)
			return listHandler.Execute(args)
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit an existing task",
		Long: `Edit an existing task by id. Only the flagged fields change; the
rest keep their stored values.

Example:
  planner edit 3f2a9c --title "Revised title" --duration 45`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			editHandler := NewEditCommand(r.planner)
			return editHandler.Execute(ctx, cmd, args)
		},
	}
	addTaskFlags(editCmd)
	editCmd.Flags().String("title", "", "New task title")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long: `Delete a task by id. Asks for confirmation unless --yes is given.

This operation cannot be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interactive confirmation may need a longer timeout
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			deleteHandler := NewDeleteCommand(r.planner)
			return deleteHandler.Execute(ctx, cmd, args)
		},
	}
	deleteCmd.Flags().BoolP("yes", "y", false, "Delete without asking for confirmation")

	searchCmd := &cobra.Command{
		Use:   "search [pattern]",
		Short: "Search task titles",
		Long: `Filter tasks by title with a case-insensitive regular expression.
Matched substrings are highlighted in the output.

Examples:
  planner search "^Study"
  planner search "lab|quiz"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			searchHandler := NewSearchCommand(r.planner)
			return searchHandler.Execute(args)
		},
	}

	sortCmd := &cobra.Command{
		Use:   "sort [field]",
		Short: "Sort the task list",
		Long: `Reorder the task list by the given field and show the result.
Due dates compare as timestamps and durations numerically; any other
field compares its raw value.

Fields: dueDate, duration, title, tag, startTime, endTime, id

Examples:
  planner sort dueDate
  planner sort duration --desc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sortHandler := NewSortCommand(r.planner)
			return sortHandler.Execute(cmd, args)
		},
	}
	sortCmd.Flags().Bool("desc", false, "Sort in descending order")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks to a file",
		Long: `Export the task list to a JSON or CSV file in the working
directory, or to --output when given.

Examples:
  planner export --format json
  planner export --format csv --output tasks.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exportHandler := NewExportCommand(r.planner)
			return exportHandler.Execute(cmd, args)
		},
	}
	exportCmd.Flags().String("format", "json", "Export format: json or csv")
	exportCmd.Flags().StringP("output", "o", "", "Output path (default: the configured export filename)")
	exportCmd.Flags().Bool("timestamps", false, "Include CreatedAt and UpdatedAt columns in CSV output")

	importCmd := &cobra.Command{
		Use:   "import [file.json]",
		Short: "Import tasks from a JSON file",
		Long: `Merge a JSON array of tasks into the planner. Records missing a
required field are dropped and counted; records whose id already exists
are skipped, never overwritten.

Example:
  planner import backup.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			importHandler := NewImportCommand(r.planner)
			return importHandler.Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		editCmd,
		deleteCmd,
		searchCmd,
		sortCmd,
		exportCmd,
		importCmd,
	)
}

// addTaskFlags adds the task field flags shared by add and edit.
func addTaskFlags(cmd *cobra.Command) {
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("start", "", "Start time (HH:MM)")
	cmd.Flags().String("end", "", "End time (HH:MM)")
	cmd.Flags().String("duration", "", "Duration in minutes")
	cmd.Flags().String("tag", "", "Tag (letters, spaces, hyphens)")
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	if dir, _ := flags.GetString("storage-dir"); dir != "" {
		r.config.Storage.Dir = dir
	}
	if filename, _ := flags.GetString("storage-filename"); filename != "" {
		r.config.Storage.Filename = filename
	}
	if key, _ := flags.GetString("slot-key"); key != "" {
		r.config.Storage.SlotKey = key
	}

	// Export configuration
	if filename, _ := flags.GetString("json-filename"); filename != "" {
		r.config.Export.JSONFilename = filename
	}
	if filename, _ := flags.GetString("csv-filename"); filename != "" {
		r.config.Export.CSVFilename = filename
	}

	// Application configuration
	if timeout, _ := flags.GetDuration("app-timeout"); timeout > 0 {
		r.config.Application.Timeout = timeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}
