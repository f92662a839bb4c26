// Package validate gates a build on its accumulated diagnostics.
package validate

import (
	"strings"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// Guard checks unrecognized sheets and produces the report. The build passes
// only when no fatal diagnostic was recorded by any stage.
func Guard(sheets []models.Sheet, results []classify.Result, diags *models.Diagnostics) models.ValidationReport {
	report := models.ValidationReport{Sheets: make([]models.SheetReport, 0, len(results))}
	for i, res := range results {
		var headers []string
		if i < len(sheets) {
			headers = sheets[i].Headers
		}
		report.Sheets = append(report.Sheets, models.SheetReport{
			Title:          res.Title,
			Classification: res.Class,
			Headers:        headers,
			Closest:        res.Closest,
			Missing:        res.Missing,
		})
		if res.Class != models.ClassUnrecognized {
			continue
		}
		msg := "content-like sheet matches no schema"
		if res.Closest != "" {
			msg += "; closest " + string(res.Closest) + " is missing " + strings.Join(res.Missing, ", ")
		}
		diags.Fatal(models.CodeUnrecognizedContentSheet, res.Title, 0, "%s", msg)
	}
	report.Diagnostics = diags.Items()
	report.Passed = !diags.HasFatal()
	return report
}

// Unreadable is the report of a run whose source could not be loaded.
func Unreadable(source string, err error) models.ValidationReport {
	var diags models.Diagnostics
	diags.Fatal(models.CodeSourceUnreadable, "", 0, "%s: %v", source, err)
	return models.ValidationReport{
		Sheets:      []models.SheetReport{},
		Diagnostics: diags.Items(),
	}
}
