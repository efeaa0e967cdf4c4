package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all runtime configuration for a facilities run.
type Config struct {
	StoreDriver   string `yaml:"store_driver"`
	DSN           string `yaml:"dsn"`
	SQLitePath    string `yaml:"sqlite_path"`
	LinkerURL     string `yaml:"linker_url"`
	ATCCatalog    string `yaml:"atc_catalog"`
	ExportDir     string `yaml:"export_dir"`
	ExportWorkers int    `yaml:"export_workers"`
	S3Bucket      string `yaml:"s3_bucket"`
	S3Region      string `yaml:"s3_region"`
	S3Endpoint    string `yaml:"s3_endpoint"`
	MetricsFile   string `yaml:"metrics_file"`

	LogFormat string `yaml:"-"` // "text" or "json"
	LogLevel  string `yaml:"-"`
	DryRun    bool   `yaml:"-"`
}

// LoadFromFile reads a YAML config file. Keys present in the file override
// the current values; absent keys leave them untouched.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// ApplyDefaults fills in zero-valued settings.
func (c *Config) ApplyDefaults() {
	if c.StoreDriver == "" {
		c.StoreDriver = DriverMemory
	}
	if c.SQLitePath == "" {
		c.SQLitePath = "facilities.db"
	}
	if c.ExportWorkers <= 0 {
		c.ExportWorkers = 4
	}
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
}

// Validate checks the driver and the keys each driver requires.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DSN == "" {
			return fmt.Errorf("--dsn or DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.S3Bucket != "" && c.S3Region == "" && c.S3Endpoint == "" {
		return fmt.Errorf("s3_region or s3_endpoint is required when s3_bucket is set")
	}
	return nil
}

// ValidateWithDSN checks the config and requires a Postgres DSN regardless
// of the configured driver.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}
