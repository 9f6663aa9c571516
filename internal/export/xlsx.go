package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/harrison/filecat/internal/category"
)

// xlsxRenderer renders the spreadsheet artifact: a "Files" worksheet with a
// bold header in row 1, data from row 2, column A ~50 wide and column B ~20.
type xlsxRenderer struct {
	opts Options
}

// NewXLSXRenderer creates the spreadsheet renderer.
func NewXLSXRenderer(opts Options) Renderer {
	return &xlsxRenderer{opts: opts.withDefaults()}
}

// Format returns FormatXLSX.
func (r *xlsxRenderer) Format() Format {
	return FormatXLSX
}

// Render produces the xlsx bytes for the grouped data.
func (r *xlsxRenderer) Render(g category.Grouped) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := r.opts.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, &RenderError{Format: FormatXLSX, Err: err}
	}

	if err := f.SetColWidth(sheet, "A", "A", 50); err != nil {
		return nil, &RenderError{Format: FormatXLSX, Err: err}
	}
	if err := f.SetColWidth(sheet, "B", "B", 20); err != nil {
		return nil, &RenderError{Format: FormatXLSX, Err: err}
	}

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top"},
	})
	if err != nil {
		return nil, &RenderError{Format: FormatXLSX, Err: err}
	}

	if err := r.setRow(f, sheet, 1, r.opts.NameHeader, r.opts.ModifiedHeader); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", boldStyle); err != nil {
		return nil, &RenderError{Format: FormatXLSX, Err: err}
	}

	// Data starts at row 2, file names indented under their category
	rowIdx := 2
	for _, row := range tableRows(g, "   ") {
		if err := r.setRow(f, sheet, rowIdx, row.label, row.modified); err != nil {
			return nil, err
		}
		if row.category {
			ref := fmt.Sprintf("A%d", rowIdx)
			if err := f.SetCellStyle(sheet, ref, ref, boldStyle); err != nil {
				return nil, &RenderError{Format: FormatXLSX, Err: err}
			}
		}
		rowIdx++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &RenderError{Format: FormatXLSX, Err: err}
	}
	return buf.Bytes(), nil
}

func (r *xlsxRenderer) setRow(f *excelize.File, sheet string, row int, left, right string) error {
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), left); err != nil {
		return &RenderError{Format: FormatXLSX, Err: err}
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), right); err != nil {
		return &RenderError{Format: FormatXLSX, Err: err}
	}
	return nil
}
