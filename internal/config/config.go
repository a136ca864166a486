// Package config loads the dashboard's optional JSON configuration
// file. Fields are pointers so a partial file only overrides what it
// names; everything else keeps its default.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skyfuel-data/saf.report/internal/units"
)

// Config is the root dashboard configuration. Flags override file
// values, which override defaults.
type Config struct {
	// Listen is the HTTP listen address, all interfaces by default.
	Listen *string `json:"listen,omitempty"`
	// DBDriver is "sqlite" or "postgres".
	DBDriver *string `json:"db_driver,omitempty"`
	// DBPath is the SQLite file path or Postgres DSN.
	DBPath *string `json:"db_path,omitempty"`
	// MigrationsDir holds the golang-migrate SQL files.
	MigrationsDir *string `json:"migrations_dir,omitempty"`
	// EmissionUnits is the default unit for API responses.
	EmissionUnits *string `json:"emission_units,omitempty"`
}

func ptrString(v string) *string { return &v }

// Default returns the built-in configuration: SQLite file next to the
// binary, port 8050 on all interfaces.
func Default() *Config {
	return &Config{
		Listen:        ptrString(":8050"),
		DBDriver:      ptrString("sqlite"),
		DBPath:        ptrString("saf.db"),
		MigrationsDir: ptrString("migrations"),
		EmissionUnits: ptrString(units.GPerKG),
	}
}

// maxConfigSize bounds config file reads.
const maxConfigSize = 1 * 1024 * 1024

// Load reads a JSON config file and merges it over the defaults.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := loaded.validate(); err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.Merge(&loaded)
	return cfg, nil
}

// Merge copies every non-nil field of other into c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Listen != nil {
		c.Listen = other.Listen
	}
	if other.DBDriver != nil {
		c.DBDriver = other.DBDriver
	}
	if other.DBPath != nil {
		c.DBPath = other.DBPath
	}
	if other.MigrationsDir != nil {
		c.MigrationsDir = other.MigrationsDir
	}
	if other.EmissionUnits != nil {
		c.EmissionUnits = other.EmissionUnits
	}
}

func (c *Config) validate() error {
	if c.DBDriver != nil && *c.DBDriver != "sqlite" && *c.DBDriver != "postgres" {
		return fmt.Errorf("db_driver must be sqlite or postgres, got %q", *c.DBDriver)
	}
	if c.EmissionUnits != nil && !units.IsValid(*c.EmissionUnits) {
		return fmt.Errorf("emission_units must be one of %s, got %q",
			units.GetValidUnitsString(), *c.EmissionUnits)
	}
	return nil
}
