// Package reader loads CMS workbooks and structured fallbacks into models.Workbook.
package reader

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Bounds is the used range a sheet declares.
type Bounds struct {
	// MaxRow is the last used row (1-based, inclusive).
	MaxRow int
	// MaxCol is the last used column (1-based, inclusive).
	MaxCol int
	// Sized is false when the sheet declares no usable range.
	Sized bool
}

// ParseDimension parses a dimension reference like "A1:D10" or "$A$1:$D$10".
// A missing reference or a single cell ("A1") yields an unsized Bounds.
func ParseDimension(ref string) Bounds {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return Bounds{}
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Bounds{}
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Bounds{}
	}
	if endRow < startRow || endCol < startCol {
		return Bounds{}
	}

	return Bounds{
		MaxRow: endRow,
		MaxCol: endCol,
		Sized:  true,
	}
}

// sheetBounds reads the declared dimension of a sheet.
func sheetBounds(f *excelize.File, sheetName string) Bounds {
	ref, err := f.GetSheetDimension(sheetName)
	if err != nil {
		return Bounds{}
	}
	return ParseDimension(ref)
}
