package menus

import (
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// FromPages derives menu items from page records: every non-home page
// without a parent becomes a top-level item and pages whose parent key names
// a top-level page become its children. Targets come from the route table so
// overridden paths are honoured.
func FromPages(records []models.PageRecord, routes models.RouteTable) []models.MenuItem {
	type pageKey struct{ lang, key string }
	labels := make(map[pageKey]string)
	for _, rec := range records {
		if rec.IsHome() || rec.ParentKey != "" {
			continue
		}
		labels[pageKey{rec.Lang, rec.CanonicalKey}] = pageLabel(rec)
	}

	var out []models.MenuItem
	for _, rec := range records {
		if rec.IsHome() {
			continue
		}
		parent := ""
		if rec.ParentKey != "" {
			var ok bool
			parent, ok = labels[pageKey{rec.Lang, rec.ParentKey}]
			if !ok {
				continue
			}
		}
		path := rec.RelativePath
		if p, ok := routes.Lookup(rec.CanonicalKey, rec.Lang); ok {
			path = p
		}
		label := pageLabel(rec)
		out = append(out, models.MenuItem{
			Lang:        rec.Lang,
			Label:       label,
			Target:      models.PageURL(rec.Lang, path),
			ParentLabel: parent,
			Order:       rec.Order,
			Column:      1,
			Sheet:       rec.Sheet,
			Row:         rec.Row,
		})
	}
	return out
}

func pageLabel(rec models.PageRecord) string {
	if t := SanitizeLabel(rec.Title()); t != "" {
		return t
	}
	return rec.CanonicalKey
}
