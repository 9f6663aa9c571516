package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/filecat/internal/category"
	"github.com/harrison/filecat/internal/tui"
)

// NewAssignCommand creates and returns the assign subcommand
func NewAssignCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <path>",
		Short: "Interactively assign a category to each discovered file",
		Long: `Resolve and walk the given path, then open an interactive screen where
each file is assigned one of the configured categories. Saving writes the
assignments YAML consumed by the export command.

An existing assignments file at the target path pre-populates the screen,
so assignment sessions can be resumed.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath, _ := cmd.Flags().GetString("assignments")
			return runAssign(cmd, args[0], outPath)
		},
	}

	cmd.Flags().String("assignments", "assignments.yaml", "assignments file to read and write")

	return cmd
}

func runAssign(cmd *cobra.Command, userPath, outPath string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	set, err := categorySet(cfg)
	if err != nil {
		return err
	}

	records, err := enumerate(cfg, userPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		log.Warnf("no files found under %s", userPath)
		return nil
	}

	var existing *category.Assignments
	if _, statErr := os.Stat(outPath); statErr == nil {
		existing, err = category.LoadFile(outPath, set)
		if err != nil {
			return err
		}
		if dropped := existing.Reconcile(records); len(dropped) > 0 {
			log.Warnf("dropped %d stale assignments no longer present under %s", len(dropped), userPath)
		}
	}

	assignments, saved, err := tui.Run(records, set, existing)
	if err != nil {
		return err
	}
	if !saved {
		log.Infof("assignment session discarded")
		return nil
	}

	if err := category.SaveFile(outPath, assignments); err != nil {
		return err
	}
	log.Infof("saved %d assignments to %s", assignments.Len(), outPath)
	return nil
}
