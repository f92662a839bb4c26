package models

import (
	"fmt"
	"strings"
)

// Severity grades a diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityFatal   Severity = "fatal"
)

// DiagnosticCode identifies the kind of problem a diagnostic reports.
type DiagnosticCode string

const (
	CodeSourceUnreadable          DiagnosticCode = "SOURCE_UNREADABLE"
	CodeUnrecognizedContentSheet  DiagnosticCode = "UNRECOGNIZED_CONTENT_SHEET"
	CodeMissingRequiredPageField  DiagnosticCode = "MISSING_REQUIRED_PAGE_FIELD"
	CodeMissingHomePage           DiagnosticCode = "MISSING_HOME_PAGE"
	CodeDuplicateMenuLabel        DiagnosticCode = "DUPLICATE_MENU_LABEL"
	CodeLanguageSlugMismatch      DiagnosticCode = "LANGUAGE_SLUG_MISMATCH"
	CodeRouteConflict             DiagnosticCode = "ROUTE_CONFLICT"
	CodeOrphanMenuItem            DiagnosticCode = "ORPHAN_MENU_ITEM"
	CodeUnmatchedMetadataOverride DiagnosticCode = "UNMATCHED_METADATA_OVERRIDE"
	CodeMenuFallbackUsed          DiagnosticCode = "MENU_FALLBACK_USED"
)

// Diagnostic is one warning or fatal finding.
type Diagnostic struct {
	Severity Severity       `json:"severity"`
	Code     DiagnosticCode `json:"code"`
	Sheet    string         `json:"sheet,omitempty"`
	Row      int            `json:"row,omitempty"`
	Lang     string         `json:"lang,omitempty"`
	Message  string         `json:"message"`
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", d.Severity, d.Code)
	if d.Sheet != "" {
		fmt.Fprintf(&b, " sheet=%q", d.Sheet)
	}
	if d.Row > 0 {
		fmt.Fprintf(&b, " row=%d", d.Row)
	}
	if d.Lang != "" {
		fmt.Fprintf(&b, " lang=%s", d.Lang)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// SheetReport records what was detected for one sheet.
type SheetReport struct {
	Title          string         `json:"title"`
	Classification Classification `json:"classification"`
	Headers        []string       `json:"headers"`
	Closest        Classification `json:"closest,omitempty"`
	Missing        []string       `json:"missing,omitempty"`
}

// ValidationReport is written on every run, pass or fail.
type ValidationReport struct {
	Passed      bool          `json:"passed"`
	Sheets      []SheetReport `json:"sheets"`
	Diagnostics []Diagnostic  `json:"diagnostics"`
}

// Diagnostics accumulates findings in the order they are raised.
type Diagnostics struct {
	items []Diagnostic
}

// Warn records a warning.
func (d *Diagnostics) Warn(code DiagnosticCode, sheet string, row int, format string, args ...any) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Sheet: sheet, Row: row, Message: fmt.Sprintf(format, args...)})
}

// Fatal records a fatal finding.
func (d *Diagnostics) Fatal(code DiagnosticCode, sheet string, row int, format string, args ...any) {
	d.Add(Diagnostic{Severity: SeverityFatal, Code: code, Sheet: sheet, Row: row, Message: fmt.Sprintf(format, args...)})
}

// Add appends a diagnostic as-is.
func (d *Diagnostics) Add(diag Diagnostic) {
	d.items = append(d.items, diag)
}

// Items returns a copy of the recorded diagnostics.
func (d *Diagnostics) Items() []Diagnostic {
	out := make([]Diagnostic, len(d.items))
	copy(out, d.items)
	return out
}

// HasFatal reports whether any fatal diagnostic was recorded.
func (d *Diagnostics) HasFatal() bool {
	for _, item := range d.items {
		if item.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// Count returns the number of diagnostics with the given code.
func (d *Diagnostics) Count(code DiagnosticCode) int {
	n := 0
	for _, item := range d.items {
		if item.Code == code {
			n++
		}
	}
	return n
}
