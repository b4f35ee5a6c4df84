package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the billing calendar application
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Display     DisplayConfig     `yaml:"display"`
	Validation  ValidationConfig  `yaml:"validation"`
	Notice      NoticeConfig      `yaml:"notice"`
	Application ApplicationConfig `yaml:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir          string        `yaml:"dir" env:"BC_DB_DIR"`
	Filename     string        `yaml:"filename" env:"BC_DB_FILENAME"`
	QueryTimeout time.Duration `yaml:"query_timeout" env:"BC_DB_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"BC_DB_WRITE_TIMEOUT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol" env:"BC_DISPLAY_CURRENCY"`
	CellWidth      int    `yaml:"cell_width" env:"BC_DISPLAY_CELL_WIDTH"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	NameMaxLength int `yaml:"name_max_length" env:"BC_VALIDATION_NAME_MAX"`
}

// NoticeConfig holds advisory notice configuration
type NoticeConfig struct {
	Duration time.Duration `yaml:"duration" env:"BC_NOTICE_DURATION"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"BC_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"BC_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".bc")

	return &Config{
		Database: DatabaseConfig{
			Dir:          defaultDBDir,
			Filename:     "bc.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Display: DisplayConfig{
			CurrencySymbol: "$",
			CellWidth:      10,
		},
		Validation: ValidationConfig{
			NameMaxLength: 255,
		},
		Notice: NoticeConfig{
			Duration: 4 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("BC_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("BC_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("BC_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("BC_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}

	// Display configuration
	if symbol := os.Getenv("BC_DISPLAY_CURRENCY"); symbol != "" {
		c.Display.CurrencySymbol = symbol
	}
	if width := os.Getenv("BC_DISPLAY_CELL_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Display.CellWidth = w
		}
	}

	// Validation configuration
	if maxLen := os.Getenv("BC_VALIDATION_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.NameMaxLength = n
		}
	}

	// Notice configuration
	if duration := os.Getenv("BC_NOTICE_DURATION"); duration != "" {
		if d, err := time.ParseDuration(duration); err == nil {
			c.Notice.Duration = d
		}
	}

	// Application configuration
	if timeout := os.Getenv("BC_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("BC_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Display.CurrencySymbol == "" {
		return &ConfigError{Field: "display.currency_symbol", Message: "currency symbol cannot be empty"}
	}
	if c.Display.CellWidth < 6 {
		return &ConfigError{Field: "display.cell_width", Message: "cell width must be at least 6"}
	}

	if c.Validation.NameMaxLength < 1 {
		return &ConfigError{Field: "validation.name_max_length", Message: "name maximum length must be at least 1"}
	}

	if c.Notice.Duration <= 0 {
		return &ConfigError{Field: "notice.duration", Message: "notice duration must be positive"}
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

// Error implements the error interface
func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
