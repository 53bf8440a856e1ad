package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the planner application
type Config struct {
	Storage     StorageConfig
	Export      ExportConfig
	Application ApplicationConfig
}

// StorageConfig holds durable storage configuration
type StorageConfig struct {
	Dir          string        `toml:"dir" env:"CP_STORAGE_DIR"`
	Filename     string        `toml:"filename" env:"CP_STORAGE_FILENAME"`
	SlotKey      string        `toml:"slot_key" env:"CP_STORAGE_SLOT_KEY"`
	QueryTimeout time.Duration `toml:"query_timeout" env:"CP_STORAGE_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `toml:"write_timeout" env:"CP_STORAGE_WRITE_TIMEOUT"`
}

// ExportConfig holds export file naming configuration
type ExportConfig struct {
	JSONFilename string `toml:"json_filename" env:"CP_EXPORT_JSON_FILENAME"`
	CSVFilename  string `toml:"csv_filename" env:"CP_EXPORT_CSV_FILENAME"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"CP_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"CP_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStorageDir := filepath.Join(homeDir, ".campusplanner")

	return &Config{
		Storage: StorageConfig{
			Dir:          defaultStorageDir,
			Filename:     "planner.db",
			SlotKey:      "campusplanner.tasks",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Export: ExportConfig{
			JSONFilename: "campusplanner.json",
			CSVFilename:  "campusplanner.csv",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("CP_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("CP_STORAGE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if key := os.Getenv("CP_STORAGE_SLOT_KEY"); key != "" {
		c.Storage.SlotKey = key
	}
	if timeout := os.Getenv("CP_STORAGE_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Storage.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("CP_STORAGE_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Storage.WriteTimeout = d
		}
	}

	// Export configuration
	if filename := os.Getenv("CP_EXPORT_JSON_FILENAME"); filename != "" {
		c.Export.JSONFilename = filename
	}
	if filename := os.Getenv("CP_EXPORT_CSV_FILENAME"); filename != "" {
		c.Export.CSVFilename = filename
	}

	// Application configuration
	if timeout := os.Getenv("CP_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("CP_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}
	if c.Storage.SlotKey == "" {
		return &ConfigError{Field: "storage.slot_key", Message: "slot key cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Export.JSONFilename == "" {
		return &ConfigError{Field: "export.json_filename", Message: "JSON export filename cannot be empty"}
	}
	if c.Export.CSVFilename == "" {
		return &ConfigError{Field: "export.csv_filename", Message: "CSV export filename cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
