package classify

import (
	"sort"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// ColumnMap is a header row resolved once into field positions.
type ColumnMap struct {
	fields  map[Field]int
	locales map[string]int
	headers []string
}

// Has reports whether the field has a column.
func (c ColumnMap) Has(f Field) bool {
	_, ok := c.fields[f]
	return ok
}

// Index returns the column of a field, or -1.
func (c ColumnMap) Index(f Field) int {
	if i, ok := c.fields[f]; ok {
		return i
	}
	return -1
}

// Value reads the field's cell from a row; "" when the field has no column.
func (c ColumnMap) Value(row models.Row, f Field) string {
	return row.Cell(c.Index(f))
}

// Locales returns language-code columns sorted by code.
func (c ColumnMap) Locales() []LocaleColumn {
	out := make([]LocaleColumn, 0, len(c.locales))
	for code, idx := range c.locales {
		out = append(out, LocaleColumn{Lang: code, Index: idx})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Lang < out[j].Lang })
	return out
}

// LocaleColumn is a column named after a language code.
type LocaleColumn struct {
	Lang  string
	Index int
}

// Unmapped returns the columns the schema does not bind, in header order.
// Columns with an empty header are skipped.
func (c ColumnMap) Unmapped(s *Schema) []int {
	bound := make(map[int]bool)
	if s != nil {
		for _, f := range s.Fields() {
			if i, ok := c.fields[f]; ok {
				bound[i] = true
			}
		}
		if s.Locales {
			for _, i := range c.locales {
				bound[i] = true
			}
		}
	}

	var out []int
	for i, h := range c.headers {
		if h == "" || bound[i] {
			continue
		}
		out = append(out, i)
	}
	return out
}

// Header returns the original header text of a column.
func (c ColumnMap) Header(idx int) string {
	if idx < 0 || idx >= len(c.headers) {
		return ""
	}
	return c.headers[idx]
}

// Enabled reports whether a row passes the optional publish and enabled
// columns. Rows of a sheet with neither column are always enabled.
func (c ColumnMap) Enabled(row models.Row) bool {
	for _, f := range []Field{FieldPublish, FieldEnabled} {
		if c.Has(f) && !models.Truthy(c.Value(row, f)) {
			return false
		}
	}
	return true
}
