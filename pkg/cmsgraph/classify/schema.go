package classify

import (
	"strings"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// Requirement is satisfied when any one of its fields has a column.
type Requirement []Field

func (r Requirement) String() string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}

// Schema is the required and optional column set of one classification.
type Schema struct {
	Class    models.Classification
	Required []Requirement
	Optional []Field
	// Locales adds one requirement: at least one language-code column.
	Locales bool
}

// RequiredCount is the number of requirements; larger schemas win ties.
func (s Schema) RequiredCount() int {
	n := len(s.Required)
	if s.Locales {
		n++
	}
	return n
}

// Fields returns every field the schema binds.
func (s Schema) Fields() []Field {
	var out []Field
	for _, req := range s.Required {
		out = append(out, req...)
	}
	return append(out, s.Optional...)
}

// Score counts the satisfied requirements and names the missing ones.
func (s Schema) Score(cols ColumnMap) (int, []string) {
	score := 0
	var missing []string
	for _, req := range s.Required {
		ok := false
		for _, f := range req {
			if cols.Has(f) {
				ok = true
				break
			}
		}
		if ok {
			score++
		} else {
			missing = append(missing, req.String())
		}
	}
	if s.Locales {
		if len(cols.locales) > 0 {
			score++
		} else {
			missing = append(missing, "locale columns")
		}
	}
	return score, missing
}

// DefaultSchemas returns the built-in schemas. Their order breaks ties
// between schemas with the same RequiredCount.
func DefaultSchemas() []Schema {
	return []Schema{
		{
			Class:    models.ClassPageDefinitions,
			Required: []Requirement{{FieldLang}, {FieldPublish}, {FieldTemplate}, {FieldPath, FieldKey}},
			Optional: []Field{FieldParent, FieldOrder},
		},
		{
			Class:    models.ClassMenuDefinitions,
			Required: []Requirement{{FieldLang}, {FieldLabel}, {FieldTarget}, {FieldEnabled}},
			Optional: []Field{FieldParent, FieldOrder, FieldColumn},
		},
		{
			Class:    models.ClassRouteAliases,
			Required: []Requirement{{FieldKey}},
			Locales:  true,
		},
		{
			Class:    models.ClassStringTable,
			Required: []Requirement{{FieldLang}, {FieldKey}, {FieldValue}},
			Optional: []Field{FieldPublish, FieldEnabled},
		},
		{
			Class:    models.ClassFAQ,
			Required: []Requirement{{FieldLang}, {FieldQuestion}, {FieldAnswer}},
			Optional: []Field{FieldPublish, FieldEnabled, FieldOrder, FieldKey},
		},
		{
			Class:    models.ClassContentBlocks,
			Required: []Requirement{{FieldLang}, {FieldBody}},
			Optional: []Field{FieldPublish, FieldEnabled, FieldKey},
		},
		{
			Class:    models.ClassMetadataOverrides,
			Required: []Requirement{{FieldLang}, {FieldKey}},
			Optional: []Field{FieldPublish, FieldEnabled},
		},
	}
}
