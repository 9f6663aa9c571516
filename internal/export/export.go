// Package export renders grouped category data into spreadsheet, document,
// and PDF artifacts. Each renderer is a pure function over the same immutable
// grouped input: identical input yields identical output, and a failed render
// returns no partial bytes.
package export

import (
	"fmt"

	"github.com/harrison/filecat/internal/category"
)

// Format tags an export artifact's binary format.
type Format string

const (
	// FormatXLSX is the spreadsheet format
	FormatXLSX Format = "xlsx"
	// FormatDOCX is the word-processor format
	FormatDOCX Format = "docx"
	// FormatPDF is the PDF report format
	FormatPDF Format = "pdf"
)

// SuggestedName returns the default output file name for the format.
func (f Format) SuggestedName() string {
	return "Categorized_files." + string(f)
}

// Artifact is one rendered output: a byte buffer, its format tag, and a
// suggested file name. Owned by the caller, write-once.
type Artifact struct {
	Format Format
	Name   string
	Data   []byte
}

// RenderError reports that an exporter could not produce valid output.
// The affected artifact is withheld; other formats may still succeed.
type RenderError struct {
	Format Format
	Err    error
}

// Error implements the error interface for RenderError.
func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s output: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Options carries the configurable layout inputs shared by every renderer.
// The header titles and sheet name are configuration, not constants.
type Options struct {
	// SheetName names the spreadsheet worksheet
	SheetName string

	// NameHeader titles the left column (category / file name)
	NameHeader string

	// ModifiedHeader titles the right column (last-modified date)
	ModifiedHeader string
}

func (o Options) withDefaults() Options {
	if o.SheetName == "" {
		o.SheetName = "Files"
	}
	if o.NameHeader == "" {
		o.NameHeader = "Category / File Name"
	}
	if o.ModifiedHeader == "" {
		o.ModifiedHeader = "Last Modified"
	}
	return o
}

// Renderer renders grouped data into one binary format.
type Renderer interface {
	// Format returns the format tag this renderer produces.
	Format() Format

	// Render produces the artifact bytes for the grouped data.
	// Failures are *RenderError and return no partial output.
	Render(g category.Grouped) ([]byte, error)
}

// NewRenderer creates the renderer for a format.
func NewRenderer(f Format, opts Options) (Renderer, error) {
	switch f {
	case FormatXLSX:
		return NewXLSXRenderer(opts), nil
	case FormatDOCX:
		return NewDOCXRenderer(opts), nil
	case FormatPDF:
		return NewPDFRenderer(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
}

// tableRow is one body row of the shared two-column layout: either a
// category section row (bold, empty right cell) or a file row.
type tableRow struct {
	label    string
	modified string
	category bool
}

// tableRows flattens grouped data into the common row sequence: categories
// in canonical order, files in stored order under each. File labels are
// prefixed with indent (the spreadsheet indents, the others do not).
func tableRows(g category.Grouped, indent string) []tableRow {
	var rows []tableRow
	for _, cat := range g.Categories() {
		rows = append(rows, tableRow{label: cat, category: true})
		for _, f := range g.Files(cat) {
			rows = append(rows, tableRow{label: indent + f.Name, modified: f.Modified})
		}
	}
	return rows
}
