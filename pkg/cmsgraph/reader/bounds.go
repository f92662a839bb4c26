package reader

import "strings"

// dataBounds finds the last non-empty row and column of a grid.
// Both are -1 when the grid holds no data.
func dataBounds(rows [][]string) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if rowIdx > maxRow {
					maxRow = rowIdx
				}
				if colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// trimCells trims every cell and clips the row to maxCol columns when maxCol > 0.
func trimCells(row []string, maxCol int) []string {
	if maxCol > 0 && len(row) > maxCol {
		row = row[:maxCol]
	}
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

// trimHeader drops trailing empty header cells.
func trimHeader(header []string) []string {
	end := len(header)
	for end > 0 && header[end-1] == "" {
		end--
	}
	return header[:end]
}
