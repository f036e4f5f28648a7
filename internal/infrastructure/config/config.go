package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the smart house core.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	House   HouseConfig   `yaml:"house"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// HouseConfig selects the house to build.
type HouseConfig struct {
	// Name is the name of the built-in demo house used when no layout is set.
	Name string `yaml:"name"`

	// LayoutPath is the path to a YAML house layout. Empty selects the demo house.
	LayoutPath string `yaml:"layout_path"`
}

// ReportConfig contains report generation settings.
type ReportConfig struct {
	// MissingDevices controls devices found in no room: "silent" or "notice".
	MissingDevices string `yaml:"missing_devices"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Environment variable names.
const (
	EnvEnvFile        = "SMARTHOUSE_ENV_FILE"
	EnvHouseName      = "SMARTHOUSE_HOUSE_NAME"
	EnvLayoutPath     = "SMARTHOUSE_LAYOUT_PATH"
	EnvMissingDevices = "SMARTHOUSE_MISSING_DEVICES"
	EnvLogLevel       = "SMARTHOUSE_LOG_LEVEL"
	EnvLogFormat      = "SMARTHOUSE_LOG_FORMAT"
)

// defaultEnvFile is loaded when present and SMARTHOUSE_ENV_FILE is unset.
const defaultEnvFile = ".env"

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults); skipped when path is empty
//  3. .env file entries (only for variables not already set)
//  4. Environment variables (override file values)
//
// Environment variables follow the pattern: SMARTHOUSE_SECTION_KEY
// For example: SMARTHOUSE_LAYOUT_PATH, SMARTHOUSE_LOG_LEVEL
//
// Parameters:
//   - path: Path to the YAML configuration file, or "" for defaults only
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If a file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadEnvFile loads KEY=VALUE pairs from the .env file into the process
// environment. Variables that are already set are left alone. A missing
// default file is not an error; a missing explicit file is.
func loadEnvFile() error {
	path := os.Getenv(EnvEnvFile)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		House: HouseConfig{
			Name: "house",
		},
		Report: ReportConfig{
			MissingDevices: "silent",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvHouseName); v != "" {
		cfg.House.Name = v
	}
	if v := os.Getenv(EnvLayoutPath); v != "" {
		cfg.House.LayoutPath = v
	}
	if v := os.Getenv(EnvMissingDevices); v != "" {
		cfg.Report.MissingDevices = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.House.Name) == "" {
		errs = append(errs, "house.name is required")
	}

	switch strings.ToLower(c.Report.MissingDevices) {
	case "silent", "notice":
	default:
		errs = append(errs, "report.missing_devices must be silent or notice")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, "logging.format must be json or text")
	}

	switch strings.ToLower(c.Logging.Output) {
	case "stdout", "stderr":
	default:
		errs = append(errs, "logging.output must be stdout or stderr")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
