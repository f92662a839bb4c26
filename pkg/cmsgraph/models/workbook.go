// Package models defines the data model produced by CMS ingestion.
package models

import "strings"

// Workbook is the ordered list of tabs read from one source file.
type Workbook struct {
	// BookName is the source file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds the tabs in source order.
	Sheets []Sheet `json:"sheets"`
}

// Sheet is one tab: its title, header row and used data rows.
type Sheet struct {
	// Title is the tab name as found in the source.
	Title string `json:"title"`
	// Headers is the first row, trimmed.
	Headers []string `json:"headers"`
	// Rows contains the non-blank data rows below the header.
	Rows []Row `json:"rows,omitempty"`
}

// Row is a positional list of cell values.
type Row struct {
	// R is the source row index (1-based, header is row 1).
	R int `json:"r"`
	// Cells holds the trimmed cell text by column position.
	Cells []string `json:"c"`
}

// Cell returns the value at column idx, or "" when idx is out of range.
func (r Row) Cell(idx int) string {
	if idx < 0 || idx >= len(r.Cells) {
		return ""
	}
	return r.Cells[idx]
}

// Blank reports whether every cell in the row is empty.
func (r Row) Blank() bool {
	for _, c := range r.Cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
