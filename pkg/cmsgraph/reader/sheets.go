package reader

import (
	"github.com/xuri/excelize/v2"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// ReadSheet reads the header row and the used data rows of one sheet.
// Rows past the declared dimension are never visited; blank rows are skipped.
func ReadSheet(f *excelize.File, sheetName string, opts Options) (models.Sheet, error) {
	sheet := models.Sheet{Title: sheetName}
	bounds := sheetBounds(f, sheetName)

	rows, err := f.Rows(sheetName)
	if err != nil {
		return sheet, err
	}
	defer rows.Close()

	limit := opts.maxBlankRun()
	rowNum := 0
	blankRun := 0
	for rows.Next() {
		rowNum++ // 1-based row index
		if bounds.Sized && rowNum > bounds.MaxRow {
			break
		}

		cols, err := rows.Columns()
		if err != nil {
			return sheet, err
		}
		cells := trimCells(cols, bounds.MaxCol)

		if rowNum == 1 {
			sheet.Headers = trimHeader(cells)
			continue
		}

		row := models.Row{R: rowNum, Cells: cells}
		if row.Blank() {
			blankRun++
			if !bounds.Sized && limit > 0 && blankRun >= limit {
				break
			}
			continue
		}
		blankRun = 0
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, rows.Error()
}
