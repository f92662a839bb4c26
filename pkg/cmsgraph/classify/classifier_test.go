package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

func classify(headers ...string) Result {
	return New(nil).Classify(0, models.Sheet{Title: "T", Headers: headers})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    models.Classification
	}{
		{"pages", []string{"lang", "publish", "slug", "template"}, models.ClassPageDefinitions},
		{"pages with key only", []string{"Language", "Published", "slugKey", "Template", "title"}, models.ClassPageDefinitions},
		{"pages polish headers", []string{"język", "opublikowany", "ścieżka", "szablon"}, models.ClassPageDefinitions},
		{"menu", []string{"lang", "label", "href", "enabled", "parent", "col"}, models.ClassMenuDefinitions},
		{"route aliases", []string{"slugKey", "pl", "en"}, models.ClassRouteAliases},
		{"strings", []string{"lang", "key", "value"}, models.ClassStringTable},
		{"faq", []string{"lang", "question", "answer", "publish"}, models.ClassFAQ},
		{"content blocks", []string{"lang", "key", "html"}, models.ClassContentBlocks},
		{"metadata overrides", []string{"lang", "page_key", "title", "description"}, models.ClassMetadataOverrides},
		{"generic", []string{"name", "phone", "email"}, models.ClassGenericCollection},
		{"generic with language only", []string{"lang", "name"}, models.ClassGenericCollection},
		{"empty", nil, models.ClassGenericCollection},
		{"content-like without schema", []string{"lang", "publish", "foo"}, models.ClassUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.headers...).Class)
		})
	}
}

func TestClassifyPrefersLargerSchema(t *testing.T) {
	// Satisfies both PageDefinitions (4) and MetadataOverrides (2).
	res := classify("lang", "key", "publish", "template")
	assert.Equal(t, models.ClassPageDefinitions, res.Class)
	assert.Equal(t, 4, res.Score)
	require.NotNil(t, res.Schema)
	assert.Equal(t, models.ClassPageDefinitions, res.Schema.Class)
}

func TestClassifyTieBreakIsDeclarationOrder(t *testing.T) {
	// StringTable and FAQ both require three columns.
	res := classify("lang", "key", "value", "question", "answer")
	assert.Equal(t, models.ClassStringTable, res.Class)
}

func TestClassifyUnrecognizedReportsClosestSchema(t *testing.T) {
	res := classify("lang", "publish", "slug", "title")

	assert.Equal(t, models.ClassUnrecognized, res.Class)
	assert.True(t, res.ContentLike)
	assert.Equal(t, models.ClassPageDefinitions, res.Closest)
	assert.Equal(t, []string{"template"}, res.Missing)
	assert.Nil(t, res.Schema)
}

func TestClassifyIgnoresOrderAndSynonyms(t *testing.T) {
	variants := [][]string{
		{"lang", "publish", "slug", "template"},
		{"template", "slug", "publish", "lang"},
		{"Szablon", "Path", "IS PUBLISHED", "Locale"},
		{"slug", "layout", "language", "published"},
		{"Język", "route", "tpl", "Publish"},
	}
	for _, headers := range variants {
		res := classify(headers...)
		assert.Equal(t, models.ClassPageDefinitions, res.Class, "headers %v", headers)
		assert.Equal(t, 4, res.Score, "headers %v", headers)
	}
}

func TestClassifyAllKeepsSourceOrder(t *testing.T) {
	sheets := []models.Sheet{
		{Title: "Menu", Headers: []string{"lang", "label", "url", "active"}},
		{Title: "Pages", Headers: []string{"lang", "publish", "path", "template"}},
	}
	results := New(nil).ClassifyAll(sheets)

	require.Len(t, results, 2)
	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, "Menu", results[0].Title)
	assert.Equal(t, models.ClassMenuDefinitions, results[0].Class)
	assert.Equal(t, 1, results[1].Index)
	assert.Equal(t, models.ClassPageDefinitions, results[1].Class)
}

func TestCustomSynonyms(t *testing.T) {
	dict := NewDictionary(map[Field][]string{FieldTemplate: {"widok"}}, nil)
	res := New(dict).Classify(0, models.Sheet{Headers: []string{"lang", "publish", "slug", "widok"}})
	assert.Equal(t, models.ClassPageDefinitions, res.Class)
}
