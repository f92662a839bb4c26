package pages

import (
	"strings"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

type pageID struct {
	key  string
	lang string
}

// ApplyOverrides merges a MetadataOverrides sheet into the matching page
// records. Non-empty cells replace metadata values; rows that match no
// page are reported and skipped.
func ApplyOverrides(records []models.PageRecord, sheet models.Sheet, res classify.Result, diags *models.Diagnostics) {
	index := make(map[pageID][]int)
	for i, rec := range records {
		id := pageID{key: rec.CanonicalKey, lang: rec.Lang}
		index[id] = append(index[id], i)
	}

	cols := res.Columns
	extra := cols.Unmapped(res.Schema)
	for _, row := range sheet.Rows {
		if row.Blank() || !cols.Enabled(row) {
			continue
		}
		id := pageID{
			key:  strings.TrimSpace(cols.Value(row, classify.FieldKey)),
			lang: strings.ToLower(strings.TrimSpace(cols.Value(row, classify.FieldLang))),
		}
		targets, ok := index[id]
		if !ok {
			diags.Add(models.Diagnostic{
				Severity: models.SeverityWarning,
				Code:     models.CodeUnmatchedMetadataOverride,
				Sheet:    sheet.Title,
				Row:      row.R,
				Lang:     id.lang,
				Message:  "no published page with key " + id.key,
			})
			continue
		}
		for _, idx := range extra {
			value := row.Cell(idx)
			if value == "" {
				continue
			}
			for _, t := range targets {
				if records[t].Metadata == nil {
					records[t].Metadata = make(map[string]any)
				}
				records[t].Metadata[cols.Header(idx)] = value
			}
		}
	}
}
