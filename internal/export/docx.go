package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/harrison/filecat/internal/category"
)

// docxRenderer renders the word-processor artifact: a single two-column grid
// table with bolded header and category rows. The OOXML package is written
// directly (zip archive with a document part), which keeps the output fully
// deterministic.
type docxRenderer struct {
	opts Options
}

// NewDOCXRenderer creates the document renderer.
func NewDOCXRenderer(opts Options) Renderer {
	return &docxRenderer{opts: opts.withDefaults()}
}

// Format returns FormatDOCX.
func (r *docxRenderer) Format() Format {
	return FormatDOCX
}

// Column widths in twentieths of a point; together roughly a page width.
const (
	docxNameColWidth     = 7088
	docxModifiedColWidth = 2835
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

// Render produces the docx bytes for the grouped data.
func (r *docxRenderer) Render(g category.Grouped) ([]byte, error) {
	document, err := r.documentXML(g)
	if err != nil {
		return nil, &RenderError{Format: FormatDOCX, Err: err}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", document},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, &RenderError{Format: FormatDOCX, Err: fmt.Errorf("create %s: %w", part.name, err)}
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, &RenderError{Format: FormatDOCX, Err: fmt.Errorf("write %s: %w", part.name, err)}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &RenderError{Format: FormatDOCX, Err: err}
	}
	return buf.Bytes(), nil
}

// documentXML builds the main document part: one table, header row first,
// then the shared row sequence.
func (r *docxRenderer) documentXML(g category.Grouped) (string, error) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString("\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:tbl>`)

	// Table properties: grid borders on all cells
	b.WriteString(`<w:tblPr><w:tblStyle w:val="TableGrid"/><w:tblW w:w="0" w:type="auto"/><w:tblBorders>`)
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(&b, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="auto"/>`, edge)
	}
	b.WriteString(`</w:tblBorders></w:tblPr>`)

	fmt.Fprintf(&b, `<w:tblGrid><w:gridCol w:w="%d"/><w:gridCol w:w="%d"/></w:tblGrid>`,
		docxNameColWidth, docxModifiedColWidth)

	if err := writeDocxRow(&b, r.opts.NameHeader, r.opts.ModifiedHeader, true); err != nil {
		return "", err
	}
	for _, row := range tableRows(g, "") {
		if err := writeDocxRow(&b, row.label, row.modified, row.category); err != nil {
			return "", err
		}
	}

	b.WriteString(`</w:tbl><w:sectPr/></w:body></w:document>`)
	return b.String(), nil
}

// writeDocxRow emits one table row with two cells; bold applies to the left
// cell's run (header rows bold both).
func writeDocxRow(b *strings.Builder, left, right string, bold bool) error {
	b.WriteString(`<w:tr>`)
	if err := writeDocxCell(b, docxNameColWidth, left, bold); err != nil {
		return err
	}
	if err := writeDocxCell(b, docxModifiedColWidth, right, bold && right != ""); err != nil {
		return err
	}
	b.WriteString(`</w:tr>`)
	return nil
}

func writeDocxCell(b *strings.Builder, width int, text string, bold bool) error {
	fmt.Fprintf(b, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/></w:tcPr><w:p><w:r>`, width)
	if bold {
		b.WriteString(`<w:rPr><w:b/><w:sz w:val="24"/></w:rPr>`)
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	if err := xml.EscapeText(b, []byte(text)); err != nil {
		return fmt.Errorf("escape cell text: %w", err)
	}
	b.WriteString(`</w:t></w:r></w:p></w:tc>`)
	return nil
}
