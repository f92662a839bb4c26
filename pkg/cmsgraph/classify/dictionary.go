// Package classify infers the semantic role of a sheet from its header row.
package classify

import (
	"sort"
	"strings"
)

// Field is a semantic column a schema can require.
type Field string

const (
	FieldLang     Field = "lang"
	FieldPublish  Field = "publish"
	FieldEnabled  Field = "enabled"
	FieldTemplate Field = "template"
	FieldPath     Field = "path"
	FieldKey      Field = "key"
	FieldParent   Field = "parent"
	FieldOrder    Field = "order"
	FieldLabel    Field = "label"
	FieldTarget   Field = "target"
	FieldColumn   Field = "column"
	FieldQuestion Field = "question"
	FieldAnswer   Field = "answer"
	FieldBody     Field = "body"
	FieldValue    Field = "value"
)

// DefaultLocales are the language codes recognised as path prefixes and
// route-alias columns.
var DefaultLocales = []string{"pl", "en", "de", "fr", "it", "ru", "ua"}

// DefaultSynonyms returns the built-in header names for every field.
// Names are compared after NormalizeHeader.
func DefaultSynonyms() map[Field][]string {
	return map[Field][]string{
		FieldLang:     {"lang", "language", "locale", "język", "jezyk"},
		FieldPublish:  {"publish", "published", "is_published", "publikuj", "opublikowany"},
		FieldEnabled:  {"enabled", "enable", "active", "visible", "aktywny", "widoczny", "włączony", "wlaczony"},
		FieldTemplate: {"template", "tpl", "layout", "szablon"},
		FieldPath:     {"slug", "path", "route", "permalink", "ścieżka", "sciezka"},
		FieldKey:      {"key", "slugkey", "slug_key", "canonical_key", "page_key", "klucz"},
		FieldParent:   {"parent", "parent_slug", "parentslug", "parent_key", "parent_label", "rodzic"},
		FieldOrder:    {"order", "sort", "position", "weight", "kolejność", "kolejnosc"},
		FieldLabel:    {"label", "nazwa", "etykieta", "text"},
		FieldTarget:   {"href", "url", "link", "target", "odnośnik", "odnosnik"},
		FieldColumn:   {"col", "column", "kolumna"},
		FieldQuestion: {"question", "pytanie"},
		FieldAnswer:   {"answer", "odpowiedź", "odpowiedz"},
		FieldBody:     {"body", "html", "body_md", "markdown", "content", "treść", "tresc"},
		FieldValue:    {"value", "wartość", "wartosc", "translation", "tłumaczenie", "tlumaczenie"},
	}
}

// NormalizeHeader folds a header cell for synonym lookup: trimmed, lower-case,
// with spaces and dashes turned into underscores.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-':
			return '_'
		}
		return r
	}, h)
}

// Dictionary resolves header names to fields. It is immutable once built and
// shared by every stage of a run.
type Dictionary struct {
	lookup  map[string]Field
	locales map[string]bool
}

// NewDictionary merges extra synonyms over the defaults. A name claimed by
// more than one field is bound to the field listed in extra.
func NewDictionary(extra map[Field][]string, locales []string) *Dictionary {
	d := &Dictionary{
		lookup:  make(map[string]Field),
		locales: make(map[string]bool),
	}
	d.add(DefaultSynonyms())
	d.add(extra)

	if len(locales) == 0 {
		locales = DefaultLocales
	}
	for _, code := range locales {
		if code = strings.ToLower(strings.TrimSpace(code)); code != "" {
			d.locales[code] = true
		}
	}
	return d
}

func (d *Dictionary) add(synonyms map[Field][]string) {
	fields := make([]string, 0, len(synonyms))
	for f := range synonyms {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	for _, f := range fields {
		for _, name := range synonyms[Field(f)] {
			if n := NormalizeHeader(name); n != "" {
				d.lookup[n] = Field(f)
			}
		}
	}
}

// FieldFor returns the field a header names.
func (d *Dictionary) FieldFor(header string) (Field, bool) {
	f, ok := d.lookup[NormalizeHeader(header)]
	return f, ok
}

// IsLocale reports whether code is a recognised language code.
func (d *Dictionary) IsLocale(code string) bool {
	return d.locales[strings.ToLower(strings.TrimSpace(code))]
}

// Locales returns the recognised language codes, sorted.
func (d *Dictionary) Locales() []string {
	out := make([]string, 0, len(d.locales))
	for code := range d.locales {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Resolve maps a header row to column positions. The first column naming a
// field wins; later duplicates stay unmapped.
func (d *Dictionary) Resolve(headers []string) ColumnMap {
	cols := ColumnMap{
		fields:  make(map[Field]int),
		locales: make(map[string]int),
		headers: headers,
	}
	for i, h := range headers {
		n := NormalizeHeader(h)
		if n == "" {
			continue
		}
		if f, ok := d.lookup[n]; ok {
			if _, dup := cols.fields[f]; !dup {
				cols.fields[f] = i
			}
			continue
		}
		if d.locales[n] {
			if _, dup := cols.locales[n]; !dup {
				cols.locales[n] = i
			}
		}
	}
	return cols
}
