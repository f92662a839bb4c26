package reader

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// ReadCSV reads a CSV file as a single-tab workbook named after the file.
func ReadCSV(path string) (*models.Workbook, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, NewSourceError(path, "", err)
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.FieldsPerRecord = -1
	grid, err := r.ReadAll()
	if err != nil {
		return nil, NewSourceError(path, "", err)
	}

	sheet := models.Sheet{Title: baseName(path)}
	maxRow, maxCol := dataBounds(grid)
	if maxRow >= 0 {
		for i, record := range grid[:maxRow+1] {
			cells := trimCells(record, maxCol+1)
			if i == 0 {
				if len(cells) > 0 {
					cells[0] = strings.TrimPrefix(cells[0], "\ufeff")
				}
				sheet.Headers = trimHeader(cells)
				continue
			}
			row := models.Row{R: i + 1, Cells: cells}
			if row.Blank() {
				continue
			}
			sheet.Rows = append(sheet.Rows, row)
		}
	}

	return &models.Workbook{
		BookName: filepath.Base(path),
		Sheets:   []models.Sheet{sheet},
	}, nil
}
