package config

import (
	"fmt"
	"os"

	"campusplanner/internal/repository/sqlite"
)

// CreateRepository creates a slot repository instance using the
// configuration system. The storage directory is created when missing.
func CreateRepository(config *Config) (sqlite.SlotRepository, error) {
	if err := os.MkdirAll(config.Storage.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	repo, err := sqlite.New(config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.SlotRepository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
