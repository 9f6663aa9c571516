package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/filecat/internal/category"
	"github.com/harrison/filecat/internal/export"
	"github.com/harrison/filecat/internal/filelock"
)

// NewExportCommand creates and returns the export subcommand
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Render the categorized listing into report files",
		Long: `Resolve and walk the given path, load the assignments file, group the
assigned files by category, and render the grouped listing. By default all
three formats are produced; pass any of --xlsx, --docx, --pdf to select a
subset.

A format that fails to render withholds only its own artifact; the
remaining formats are still written.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0])
		},
	}

	cmd.Flags().String("assignments", "assignments.yaml", "assignments file to load")
	cmd.Flags().String("out", "", "output directory (default from config)")
	cmd.Flags().Bool("xlsx", false, "render the spreadsheet artifact")
	cmd.Flags().Bool("docx", false, "render the document artifact")
	cmd.Flags().Bool("pdf", false, "render the PDF artifact")

	return cmd
}

func runExport(cmd *cobra.Command, userPath string) error {
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

	assignPath, _ := cmd.Flags().GetString("assignments")
	assignments, err := category.LoadFile(assignPath, set)
	if err != nil {
		return err
	}
	if dropped := assignments.Reconcile(records); len(dropped) > 0 {
		log.Warnf("dropped %d assignments not present under %s", len(dropped), userPath)
	}
	if assignments.Len() == 0 {
		log.Warnf("no assigned files; output will contain only the header row")
	}

	renderers := selectedRenderers(cmd, export.Options{
		SheetName:      cfg.SheetName,
		NameHeader:     cfg.Headers.Name,
		ModifiedHeader: cfg.Headers.Modified,
	})

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	grouped := category.Group(assignments)
	svc := export.NewService(renderers, log)
	artifacts, renderErrs := svc.Export(grouped, assignments.ContentHash())

	for _, artifact := range artifacts {
		target := filepath.Join(outDir, artifact.Name)
		if err := filelock.LockAndWrite(target, artifact.Data); err != nil {
			return err
		}
		log.Infof("wrote %s", target)
	}

	for _, renderErr := range renderErrs {
		log.Errorf("%v", renderErr)
	}
	if len(artifacts) == 0 && len(renderErrs) > 0 {
		return fmt.Errorf("all export formats failed")
	}
	return nil
}

// selectedRenderers builds the renderer list from the format flags;
// no flags means all three formats.
func selectedRenderers(cmd *cobra.Command, opts export.Options) []export.Renderer {
	xlsx, _ := cmd.Flags().GetBool("xlsx")
	docx, _ := cmd.Flags().GetBool("docx")
	pdf, _ := cmd.Flags().GetBool("pdf")
	if !xlsx && !docx && !pdf {
		xlsx, docx, pdf = true, true, true
	}

	var renderers []export.Renderer
	if xlsx {
		renderers = append(renderers, export.NewXLSXRenderer(opts))
	}
	if docx {
		renderers = append(renderers, export.NewDOCXRenderer(opts))
	}
	if pdf {
		renderers = append(renderers, export.NewPDFRenderer(opts))
	}
	return renderers
}
