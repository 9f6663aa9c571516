package export

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/harrison/filecat/internal/category"
)

// pdfRenderer renders the PDF artifact: an A4 flowed table with fixed column
// widths of 250 and 100 points, 10pt Helvetica, bold header and category
// rows, and grid lines on all cells.
type pdfRenderer struct {
	opts Options
}

// NewPDFRenderer creates the PDF renderer.
func NewPDFRenderer(opts Options) Renderer {
	return &pdfRenderer{opts: opts.withDefaults()}
}

// Format returns FormatPDF.
func (r *pdfRenderer) Format() Format {
	return FormatPDF
}

const (
	pdfNameColWidth     = 250
	pdfModifiedColWidth = 100
	pdfRowHeight        = 16
	pdfFontSize         = 10
)

// Render produces the pdf bytes for the grouped data.
func (r *pdfRenderer) Render(g category.Grouped) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle("Categorized Files", false)
	// A fixed creation date keeps identical input byte-identical
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetAutoPageBreak(true, 36)
	pdf.SetLineWidth(0.5)
	pdf.AddPage()

	r.writeRow(pdf, r.opts.NameHeader, r.opts.ModifiedHeader, true)
	for _, row := range tableRows(g, "") {
		r.writeRow(pdf, row.label, row.modified, row.category)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Format: FormatPDF, Err: err}
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) writeRow(pdf *gofpdf.Fpdf, left, right string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, pdfFontSize)
	pdf.CellFormat(pdfNameColWidth, pdfRowHeight, left, "1", 0, "L", false, 0, "")
	pdf.CellFormat(pdfModifiedColWidth, pdfRowHeight, right, "1", 1, "L", false, 0, "")
}
