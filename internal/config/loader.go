package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if one exists
// 3. Override with environment variables (a .env file is honoured first)
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: Merge the TOML config file when present
	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}

	// Step 3: Load a .env file if present, then the environment itself.
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load()
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 4: Validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// configFilePath resolves the TOML config file location: the
// CAMPUS_PLANNER_CONFIG variable when set, otherwise
// ~/.campusplanner/config.toml.
func configFilePath() string {
	if path := os.Getenv("CAMPUS_PLANNER_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".campusplanner", "config.toml")
}

// loadConfigFile merges the TOML config file into the configuration. A
// missing file is fine; a present but unparseable one is an error.
func (l *Loader) loadConfigFile() error {
	path := configFilePath()
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	var parsed fileConfig
	if _, err := toml.DecodeFile(path, &parsed); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	parsed.mergeInto(l.config)
	return nil
}

// fileConfig mirrors Config with pointer fields so that absent TOML keys
// are distinguishable from zero values.
type fileConfig struct {
	Storage struct {
		Dir          *string       `toml:"dir"`
		Filename     *string       `toml:"filename"`
		SlotKey      *string       `toml:"slot_key"`
		QueryTimeout *tomlDuration `toml:"query_timeout"`
		WriteTimeout *tomlDuration `toml:"write_timeout"`
	} `toml:"storage"`
	Export struct {
		JSONFilename *string `toml:"json_filename"`
		CSVFilename  *string `toml:"csv_filename"`
	} `toml:"export"`
	Application struct {
		Timeout *tomlDuration `toml:"timeout"`
		Verbose *bool         `toml:"verbose"`
	} `toml:"application"`
}

func (f *fileConfig) mergeInto(config *Config) {
	if f.Storage.Dir != nil {
		config.Storage.Dir = *f.Storage.Dir
	}
	if f.Storage.Filename != nil {
		config.Storage.Filename = *f.Storage.Filename
	}
	if f.Storage.SlotKey != nil {
		config.Storage.SlotKey = *f.Storage.SlotKey
	}
	if f.Storage.QueryTimeout != nil {
		config.Storage.QueryTimeout = time.Duration(*f.Storage.QueryTimeout)
	}
	if f.Storage.WriteTimeout != nil {
		config.Storage.WriteTimeout = time.Duration(*f.Storage.WriteTimeout)
	}
	if f.Export.JSONFilename != nil {
		config.Export.JSONFilename = *f.Export.JSONFilename
	}
	if f.Export.CSVFilename != nil {
		config.Export.CSVFilename = *f.Export.CSVFilename
	}
	if f.Application.Timeout != nil {
		config.Application.Timeout = time.Duration(*f.Application.Timeout)
	}
	if f.Application.Verbose != nil {
		config.Application.Verbose = *f.Application.Verbose
	}
}

// tomlDuration accepts Go duration strings ("10s", "1m30s") in TOML values.
type tomlDuration time.Duration

func (d *tomlDuration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = tomlDuration(parsed)
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	StorageDir      *string
	StorageFilename *string
	SlotKey         *string

	// Export overrides
	JSONFilename *string
	CSVFilename  *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StorageDir != nil {
		config.Storage.Dir = *overrides.StorageDir
	}
	if overrides.StorageFilename != nil {
		config.Storage.Filename = *overrides.StorageFilename
	}
	if overrides.SlotKey != nil {
		config.Storage.SlotKey = *overrides.SlotKey
	}
	if overrides.JSONFilename != nil {
		config.Export.JSONFilename = *overrides.JSONFilename
	}
	if overrides.CSVFilename != nil {
		config.Export.CSVFilename = *overrides.CSVFilename
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
