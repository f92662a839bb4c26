// Package pages turns page-definition rows into page records and builds the
// canonical route table.
package pages

import (
	"strings"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// Normalizer converts page rows. Problems are recorded on the diagnostics
// collector; rows with fatal problems produce no record.
type Normalizer struct {
	dict  *classify.Dictionary
	diags *models.Diagnostics
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(dict *classify.Dictionary, diags *models.Diagnostics) *Normalizer {
	return &Normalizer{dict: dict, diags: diags}
}

// Normalize returns one record per published row of a PageDefinitions sheet.
func (n *Normalizer) Normalize(sheet models.Sheet, res classify.Result) []models.PageRecord {
	cols := res.Columns
	hasPath := cols.Has(classify.FieldPath)
	extra := cols.Unmapped(res.Schema)

	var out []models.PageRecord
	for _, row := range sheet.Rows {
		if row.Blank() {
			continue
		}
		if !models.Truthy(cols.Value(row, classify.FieldPublish)) {
			continue
		}

		lang := strings.ToLower(strings.TrimSpace(cols.Value(row, classify.FieldLang)))
		template := strings.TrimSpace(cols.Value(row, classify.FieldTemplate))
		key := strings.TrimSpace(cols.Value(row, classify.FieldKey))

		var missing []string
		if lang == "" {
			missing = append(missing, "lang")
		}
		if template == "" {
			missing = append(missing, "template")
		}
		if !hasPath && key == "" {
			missing = append(missing, "key/path")
		}
		if len(missing) > 0 {
			n.diags.Add(models.Diagnostic{
				Severity: models.SeverityFatal,
				Code:     models.CodeMissingRequiredPageField,
				Sheet:    sheet.Title,
				Row:      row.R,
				Lang:     lang,
				Message:  "published page is missing " + strings.Join(missing, ", "),
			})
			continue
		}

		rel := ""
		if hasPath {
			var pathLang string
			pathLang, rel = n.SplitPath(cols.Value(row, classify.FieldPath))
			if pathLang != "" && pathLang != lang {
				n.diags.Add(models.Diagnostic{
					Severity: models.SeverityWarning,
					Code:     models.CodeLanguageSlugMismatch,
					Sheet:    sheet.Title,
					Row:      row.R,
					Lang:     pathLang,
					Message:  "path prefix /" + pathLang + "/ overrides declared language " + lang,
				})
				lang = pathLang
			}
			if pathLang == "" {
				if seg := foreignPrefix(rel); seg != "" && seg != lang {
					n.diags.Warn(models.CodeLanguageSlugMismatch, sheet.Title, row.R,
						"path prefix /%s/ is not a configured locale; kept in path", seg)
				}
			}
		}
		if key == "" {
			key = strings.Trim(rel, "/")
		}
		if key == "" {
			key = models.HomeKey
		}

		rec := models.PageRecord{
			Lang:         lang,
			CanonicalKey: key,
			RelativePath: rel,
			ParentKey:    strings.TrimSpace(cols.Value(row, classify.FieldParent)),
			Template:     template,
			Order:        models.ParseInt(cols.Value(row, classify.FieldOrder), models.DefaultOrder),
			Publish:      true,
			Home:         key == models.HomeKey || (hasPath && rel == ""),
			Metadata:     make(map[string]any, len(extra)),
			Sheet:        sheet.Title,
			Row:          row.R,
		}
		for _, idx := range extra {
			rec.Metadata[cols.Header(idx)] = row.Cell(idx)
		}
		out = append(out, rec)
	}
	return out
}

// SplitPath strips the leading slash and any language prefix from a path
// cell. It returns the prefix language ("" when there is none) and the
// relative path. A trailing slash is kept. The literal "home" yields "".
func (n *Normalizer) SplitPath(raw string) (string, string) {
	p := strings.TrimSpace(raw)
	rooted := strings.HasPrefix(p, "/")
	p = strings.TrimLeft(p, "/")

	lang := ""
	if seg, rest, found := strings.Cut(p, "/"); found || rooted {
		if n.dict.IsLocale(seg) {
			lang = strings.ToLower(seg)
			p = rest
		}
	}
	if strings.EqualFold(strings.Trim(p, "/"), models.HomeKey) {
		p = ""
	}
	if strings.Trim(p, "/") == "" {
		p = ""
	}
	return lang, p
}

// foreignPrefix returns the first path segment when it looks like a
// two-letter language code.
func foreignPrefix(rel string) string {
	seg, _, found := strings.Cut(rel, "/")
	if !found || len(seg) != 2 {
		return ""
	}
	seg = strings.ToLower(seg)
	for i := 0; i < len(seg); i++ {
		if seg[i] < 'a' || seg[i] > 'z' {
			return ""
		}
	}
	return seg
}
