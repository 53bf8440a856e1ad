package main

import (
	"fmt"
	"os"

	"campusplanner/internal/cli"
	"campusplanner/internal/config"
)

func main() {
	// Load configuration from defaults, config file, and environment.
	// Command-line flag overrides are applied by the root command.
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
