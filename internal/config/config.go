// Package config loads and validates filecat configuration.
//
// The category set, column header titles, and drive-to-share mappings are all
// configuration rather than constants: the category list and exported header
// text have changed between revisions of this tool, so nothing downstream may
// assume a particular set.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DriveMapping rewrites a mapped-drive prefix (e.g. "Z:") to a network share
// path. Mappings are consulted in the order they are configured.
type DriveMapping struct {
	// Prefix is the drive prefix to match, e.g. "Z:"
	Prefix string `yaml:"prefix"`

	// Share is the path substituted for the prefix, e.g. `\\network-share\folder`
	Share string `yaml:"share"`
}

// Headers holds the column titles rendered at the top of every export format.
type Headers struct {
	// Name is the title of the left column (category / file name)
	Name string `yaml:"name"`

	// Modified is the title of the right column (last-modified date)
	Modified string `yaml:"modified"`
}

// Config represents filecat configuration options.
type Config struct {
	// Categories is the canonical, ordered category set. Grouping and every
	// exporter emit sections in exactly this order.
	Categories []string `yaml:"categories"`

	// Headers are the export column titles
	Headers Headers `yaml:"headers"`

	// DriveMappings translate mapped-drive prefixes to network shares
	DriveMappings []DriveMapping `yaml:"drive_mappings"`

	// SheetName is the worksheet name used by the spreadsheet exporter
	SheetName string `yaml:"sheet_name"`

	// OutputDir is where export artifacts are written
	OutputDir string `yaml:"output_dir"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with the default category set and layout.
func DefaultConfig() *Config {
	return &Config{
		Categories: []string{
			"CONTRACTUAL",
			"ARCHITECTURAL",
			"STRUCTURAL",
			"SERVICES",
			"SAFETY",
			"OTHER",
		},
		Headers: Headers{
			Name:     "Category / File Name",
			Modified: "Last Modified",
		},
		DriveMappings: nil,
		SheetName:     "Files",
		OutputDir:     ".",
		LogLevel:      "info",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
// Values absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(fileCfg.Categories) > 0 {
		cfg.Categories = fileCfg.Categories
	}
	if fileCfg.Headers.Name != "" {
		cfg.Headers.Name = fileCfg.Headers.Name
	}
	if fileCfg.Headers.Modified != "" {
		cfg.Headers.Modified = fileCfg.Headers.Modified
	}
	if len(fileCfg.DriveMappings) > 0 {
		cfg.DriveMappings = fileCfg.DriveMappings
	}
	if fileCfg.SheetName != "" {
		cfg.SheetName = fileCfg.SheetName
	}
	if fileCfg.OutputDir != "" {
		cfg.OutputDir = fileCfg.OutputDir
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .filecat/config.yaml in the
// specified directory, falling back to defaults when absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".filecat", "config.yaml"))
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("config: categories must not be empty")
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if strings.TrimSpace(cat) == "" {
			return fmt.Errorf("config: categories must not contain blank entries")
		}
		if seen[cat] {
			return fmt.Errorf("config: duplicate category %q", cat)
		}
		seen[cat] = true
	}

	if c.Headers.Name == "" || c.Headers.Modified == "" {
		return fmt.Errorf("config: header titles must not be empty")
	}

	for _, m := range c.DriveMappings {
		if len(m.Prefix) != 2 || m.Prefix[1] != ':' {
			return fmt.Errorf("config: drive mapping prefix %q must be a drive letter followed by a colon", m.Prefix)
		}
		if m.Share == "" {
			return fmt.Errorf("config: drive mapping %q has an empty share", m.Prefix)
		}
	}

	return nil
}
