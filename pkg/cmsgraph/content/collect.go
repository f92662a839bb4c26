// Package content gathers string tables and content collections.
package content

import (
	"strings"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// Collector accumulates content sheets into one bundle.
type Collector struct {
	bundle *models.ContentBundle
}

// NewCollector creates a Collector with an empty bundle.
func NewCollector() *Collector {
	return &Collector{bundle: models.NewContentBundle()}
}

// Add folds a classified sheet into the bundle. StringTable rows become
// translated strings; FAQ, ContentBlocks and GenericCollection sheets become
// record collections keyed by sheet title. Other classes are ignored.
func (c *Collector) Add(sheet models.Sheet, res classify.Result) {
	switch res.Class {
	case models.ClassStringTable:
		c.addStrings(sheet, res.Columns)
	case models.ClassFAQ, models.ClassContentBlocks, models.ClassGenericCollection:
		c.addCollection(sheet, res.Columns)
	}
}

// Bundle returns the accumulated content.
func (c *Collector) Bundle() *models.ContentBundle {
	return c.bundle
}

func (c *Collector) addStrings(sheet models.Sheet, cols classify.ColumnMap) {
	for _, row := range sheet.Rows {
		if row.Blank() || !cols.Enabled(row) {
			continue
		}
		lang := language(cols, row)
		key := strings.TrimSpace(cols.Value(row, classify.FieldKey))
		if key == "" {
			continue
		}
		strs, ok := c.bundle.Strings[lang]
		if !ok {
			strs = make(map[string]string)
			c.bundle.Strings[lang] = strs
		}
		strs[key] = cols.Value(row, classify.FieldValue)
	}
}

func (c *Collector) addCollection(sheet models.Sheet, cols classify.ColumnMap) {
	byLang, ok := c.bundle.Collections[sheet.Title]
	if !ok {
		byLang = make(map[string][]models.Record)
		c.bundle.Collections[sheet.Title] = byLang
	}
	for _, row := range sheet.Rows {
		if row.Blank() || !cols.Enabled(row) {
			continue
		}
		rec := make(models.Record, len(sheet.Headers))
		for i, h := range sheet.Headers {
			if h == "" {
				continue
			}
			if _, dup := rec[h]; !dup {
				rec[h] = row.Cell(i)
			}
		}
		lang := language(cols, row)
		byLang[lang] = append(byLang[lang], rec)
	}
}

func language(cols classify.ColumnMap, row models.Row) string {
	if lang := strings.ToLower(strings.TrimSpace(cols.Value(row, classify.FieldLang))); lang != "" {
		return lang
	}
	return models.AnyLanguage
}
