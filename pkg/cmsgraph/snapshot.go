package cmsgraph

import (
	"sort"
	"strings"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// SheetSummary describes one sheet for the snapshot report.
type SheetSummary struct {
	Title          string
	Classification models.Classification
	Headers        []string
	// Rows counts non-blank rows per language; rows without a language
	// count under models.AnyLanguage.
	Rows map[string]int
	// Published counts rows per language that pass the sheet's publish or
	// enabled column.
	Published map[string]int
}

// Languages returns the languages seen in Rows, sorted.
func (s SheetSummary) Languages() []string {
	out := make([]string, 0, len(s.Rows))
	for lang := range s.Rows {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Summarize returns a summary of every sheet of a build in source order.
func Summarize(res *Result) []SheetSummary {
	if res == nil || res.Workbook == nil {
		return nil
	}
	out := make([]SheetSummary, 0, len(res.Sheets))
	for i, cls := range res.Sheets {
		sheet := res.Workbook.Sheets[i]
		sum := SheetSummary{
			Title:          sheet.Title,
			Classification: cls.Class,
			Headers:        sheet.Headers,
			Rows:           make(map[string]int),
			Published:      make(map[string]int),
		}
		for _, row := range sheet.Rows {
			if row.Blank() {
				continue
			}
			lang := strings.ToLower(strings.TrimSpace(cls.Columns.Value(row, classify.FieldLang)))
			if lang == "" {
				lang = models.AnyLanguage
			}
			sum.Rows[lang]++
			if cls.Columns.Enabled(row) {
				sum.Published[lang]++
			}
		}
		out = append(out, sum)
	}
	return out
}
