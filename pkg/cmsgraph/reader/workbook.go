package reader

import (
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// Open reads a source file into a Workbook, choosing the reader by extension.
func Open(path string, opts Options) (*models.Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadWorkbook(path, opts)
	case ".json", ".yaml", ".yml":
		return ReadRecords(path)
	case ".csv":
		return ReadCSV(path)
	default:
		return nil, NewSourceError(path, "", ErrUnsupportedSource)
	}
}

// ReadWorkbook reads every sheet of an xlsx file in tab order.
func ReadWorkbook(path string, opts Options) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewSourceError(path, "", err)
	}
	defer f.Close()

	wb := &models.Workbook{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := ReadSheet(f, sheetName, opts)
		if err != nil {
			return nil, NewSourceError(path, sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}
