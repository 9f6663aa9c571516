// Package cmd wires the filecat command-line interface: scanning a directory
// tree, assigning categories, and exporting the categorized listing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/filecat/internal/category"
	"github.com/harrison/filecat/internal/config"
	"github.com/harrison/filecat/internal/fileutil"
	"github.com/harrison/filecat/internal/logger"
	"github.com/harrison/filecat/internal/pathmap"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for filecat
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filecat",
		Short: "Categorize directory listings and export them as reports",
		Long: `filecat walks a directory tree, lets you assign each discovered file to
one of a configured set of categories, and exports the categorized listing
as spreadsheet (.xlsx), document (.docx), and PDF reports.

Paths may be local, UNC, or use a mapped-drive prefix translated through
the configured drive mappings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "path to config file (default .filecat/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log verbosity: debug, info, warn, error")

	cmd.AddCommand(NewScanCommand())
	cmd.AddCommand(NewAssignCommand())
	cmd.AddCommand(NewExportCommand())

	return cmd
}

// loadConfig resolves the --config flag into a validated configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadConfig(path)
	} else {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", cwdErr)
		}
		cfg, err = config.LoadConfigFromDir(cwd)
	}
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *logger.ConsoleLogger {
	return logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)
}

// enumerate runs the resolve + enumerate front half of the pipeline for a
// user-supplied path.
func enumerate(cfg *config.Config, userPath string) ([]fileutil.FileRecord, error) {
	mappings := make([]pathmap.Mapping, 0, len(cfg.DriveMappings))
	for _, m := range cfg.DriveMappings {
		mappings = append(mappings, pathmap.Mapping{Prefix: m.Prefix, Share: m.Share})
	}

	resolved, err := pathmap.NewResolver(mappings).Resolve(userPath)
	if err != nil {
		return nil, err
	}

	return fileutil.Enumerate(resolved, userPath)
}

func categorySet(cfg *config.Config) (*category.Set, error) {
	return category.NewSet(cfg.Categories)
}
