// Package menus builds per-language navigation bundles from menu rows.
package menus

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// MaxColumns is the number of display columns a parent can have.
const MaxColumns = 4

// ExtractItems reads the enabled rows of a MenuDefinitions sheet. Rows
// without a language fall back to defaultLang; rows without a label are
// dropped.
func ExtractItems(sheet models.Sheet, res classify.Result, defaultLang string) []models.MenuItem {
	cols := res.Columns
	var out []models.MenuItem
	for _, row := range sheet.Rows {
		if row.Blank() || !models.Truthy(cols.Value(row, classify.FieldEnabled)) {
			continue
		}
		label := SanitizeLabel(cols.Value(row, classify.FieldLabel))
		if label == "" {
			continue
		}
		lang := strings.ToLower(strings.TrimSpace(cols.Value(row, classify.FieldLang)))
		if lang == "" {
			lang = defaultLang
		}
		column := models.ParseInt(cols.Value(row, classify.FieldColumn), 1)
		if column < 1 || column > MaxColumns {
			column = 1
		}
		out = append(out, models.MenuItem{
			Lang:        lang,
			Label:       label,
			Target:      SanitizeTarget(cols.Value(row, classify.FieldTarget), lang, label),
			ParentLabel: SanitizeLabel(cols.Value(row, classify.FieldParent)),
			Order:       models.ParseInt(cols.Value(row, classify.FieldOrder), models.DefaultOrder),
			Column:      column,
			Sheet:       sheet.Title,
			Row:         row.R,
		})
	}
	return out
}

// Builder assembles menu bundles.
type Builder struct {
	diags *models.Diagnostics
	now   func() time.Time
}

// NewBuilder creates a Builder. now defaults to time.Now.
func NewBuilder(diags *models.Diagnostics, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{diags: diags, now: now}
}

// Build returns the bundle of one language from the given items.
//
// Top-level items and children are deduplicated by label separately; the
// first row wins. Children are grouped under the top-level item whose label
// matches their parent label, bucketed by column and sorted by order then
// label.
func (b *Builder) Build(lang string, items []models.MenuItem) *models.MenuBundle {
	var tops, children []models.MenuItem
	for _, item := range items {
		if item.Lang != lang {
			continue
		}
		if item.ParentLabel == "" {
			tops = append(tops, item)
		} else {
			children = append(children, item)
		}
	}
	tops = b.dedupe(tops)
	children = b.dedupe(children)
	sortItems(tops)
	sortItems(children)

	topLabels := make(map[string]bool, len(tops))
	for _, t := range tops {
		topLabels[t.Label] = true
	}
	byParent := make(map[string][]models.MenuItem)
	for _, c := range children {
		if !topLabels[c.ParentLabel] {
			b.diags.Add(models.Diagnostic{
				Severity: models.SeverityWarning,
				Code:     models.CodeOrphanMenuItem,
				Sheet:    c.Sheet,
				Row:      c.Row,
				Lang:     lang,
				Message:  "parent " + c.ParentLabel + " of " + c.Label + " is not a top-level item",
			})
			continue
		}
		byParent[c.ParentLabel] = append(byParent[c.ParentLabel], c)
	}

	nodes := make([]models.MenuNode, 0, len(tops))
	for _, t := range tops {
		node := toNode(t, 0)
		node.Children = columns(byParent[t.Label])
		nodes = append(nodes, node)
	}

	return &models.MenuBundle{
		Lang:        lang,
		GeneratedAt: b.now().UTC(),
		Items:       nodes,
		Version:     Fingerprint(nodes),
	}
}

func (b *Builder) dedupe(items []models.MenuItem) []models.MenuItem {
	seen := make(map[string]models.MenuItem, len(items))
	out := items[:0:0]
	for _, item := range items {
		if first, dup := seen[item.Label]; dup {
			b.diags.Add(models.Diagnostic{
				Severity: models.SeverityWarning,
				Code:     models.CodeDuplicateMenuLabel,
				Sheet:    item.Sheet,
				Row:      item.Row,
				Lang:     item.Lang,
				Message:  duplicateMessage(item, first),
			})
			continue
		}
		seen[item.Label] = item
		out = append(out, item)
	}
	return out
}

func duplicateMessage(dup, first models.MenuItem) string {
	return fmt.Sprintf("label %q already defined at %s row %d; dropped %s row %d",
		dup.Label, first.Sheet, first.Row, dup.Sheet, dup.Row)
}

func columns(items []models.MenuItem) []models.MenuColumn {
	if len(items) == 0 {
		return nil
	}
	var buckets [MaxColumns + 1][]models.MenuNode
	for _, item := range items {
		buckets[item.Column] = append(buckets[item.Column], toNode(item, item.Column))
	}
	var out []models.MenuColumn
	for col := 1; col <= MaxColumns; col++ {
		if len(buckets[col]) > 0 {
			out = append(out, models.MenuColumn{Column: col, Items: buckets[col]})
		}
	}
	return out
}

func toNode(item models.MenuItem, column int) models.MenuNode {
	return models.MenuNode{
		ID:     NodeID(item.Lang, item.Label),
		Label:  item.Label,
		Target: item.Target,
		Order:  item.Order,
		Column: column,
	}
}

func sortItems(items []models.MenuItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		la, lb := strings.ToLower(a.Label), strings.ToLower(b.Label)
		if la != lb {
			return la < lb
		}
		return a.Label < b.Label
	})
}
