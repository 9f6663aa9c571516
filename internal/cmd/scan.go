package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/filecat/internal/category"
	"github.com/harrison/filecat/internal/fileutil"
)

// NewScanCommand creates and returns the scan subcommand
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Walk a directory and list every discovered file",
		Long: `Resolve the given path (local, UNC, or mapped drive), walk the tree,
and print one line per regular file: name, last-modified date, and the
absolute path so it can be copied into other tools.

With --init-assignments, additionally write an assignments YAML listing
every file with an empty category, ready for hand editing or for the
assign command.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seedPath, _ := cmd.Flags().GetString("init-assignments")
			return runScan(cmd, args[0], seedPath)
		},
	}

	cmd.Flags().String("init-assignments", "", "write a seed assignments file at this path")

	return cmd
}

func runScan(cmd *cobra.Command, userPath, seedPath string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	records, err := enumerate(cfg, userPath)
	if err != nil {
		return err
	}

	printListing(cmd.OutOrStdout(), records)
	log.Infof("scanned %s: %d files", userPath, len(records))

	if seedPath != "" {
		if err := category.SeedFile(seedPath, records); err != nil {
			return err
		}
		log.Infof("wrote seed assignments to %s", seedPath)
	}

	return nil
}

func printListing(out io.Writer, records []fileutil.FileRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No files found in the selected directory.")
		return
	}

	for i, rec := range records {
		fmt.Fprintf(out, "%4d  %-50s %-12s %s\n", i+1, rec.Name, rec.Modified, rec.AbsolutePath)
	}
}
