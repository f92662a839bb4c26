package pages

import (
	"fmt"
	"strings"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// RouteBuilder assembles the route table. Entries are applied in the order
// they are added; a later entry for the same key and language wins.
type RouteBuilder struct {
	table models.RouteTable
	norm  *Normalizer
	diags *models.Diagnostics
}

// NewRouteBuilder creates an empty RouteBuilder.
func NewRouteBuilder(norm *Normalizer, diags *models.Diagnostics) *RouteBuilder {
	return &RouteBuilder{table: models.RouteTable{}, norm: norm, diags: diags}
}

// AddPages records the path of every page record. A home page published
// under another key is also recorded under the home key.
func (b *RouteBuilder) AddPages(records []models.PageRecord) {
	for _, rec := range records {
		b.set(rec.CanonicalKey, rec.Lang, rec.RelativePath, rec.Sheet, rec.Row)
		if rec.IsHome() && rec.CanonicalKey != models.HomeKey {
			b.set(models.HomeKey, rec.Lang, rec.RelativePath, rec.Sheet, rec.Row)
		}
	}
}

// AddAliases records every non-empty language cell of a RouteAliases sheet.
// An empty cell never creates a route, so a language stays absent.
func (b *RouteBuilder) AddAliases(sheet models.Sheet, res classify.Result) {
	cols := res.Columns
	locales := cols.Locales()
	for _, row := range sheet.Rows {
		key := strings.TrimSpace(cols.Value(row, classify.FieldKey))
		if key == "" {
			continue
		}
		for _, lc := range locales {
			raw := strings.TrimSpace(row.Cell(lc.Index))
			if raw == "" {
				continue
			}
			_, rel := b.norm.SplitPath(raw)
			b.set(key, lc.Lang, rel, sheet.Title, row.R)
		}
	}
}

func (b *RouteBuilder) set(key, lang, path, sheet string, row int) {
	prev, had := b.table.Set(key, lang, path)
	if had && strings.Trim(prev, "/") != strings.Trim(path, "/") {
		b.diags.Add(models.Diagnostic{
			Severity: models.SeverityWarning,
			Code:     models.CodeRouteConflict,
			Sheet:    sheet,
			Row:      row,
			Lang:     lang,
			Message:  fmt.Sprintf("route %s changed from %q to %q", key, prev, path),
		})
	}
}

// Table returns the assembled routes.
func (b *RouteBuilder) Table() models.RouteTable {
	return b.table
}

// CheckHome records a fatal diagnostic for every required language without
// a published home page. Route aliases do not count: they rename pages, they
// do not publish them.
func CheckHome(records []models.PageRecord, languages []string, diags *models.Diagnostics) {
	homes := make(map[string]bool)
	for _, rec := range records {
		if rec.IsHome() {
			homes[rec.Lang] = true
		}
	}
	for _, lang := range languages {
		if homes[lang] {
			continue
		}
		diags.Add(models.Diagnostic{
			Severity: models.SeverityFatal,
			Code:     models.CodeMissingHomePage,
			Lang:     lang,
			Message:  "no published home page for language " + lang,
		})
	}
}
