package classify

import (
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// Result is the classification of one sheet with its resolved columns.
type Result struct {
	models.SheetClassification
	Columns ColumnMap
	// Schema is the winning schema; nil for generic and unrecognized sheets.
	Schema *Schema
}

// Classifier assigns a classification to sheets by header shape.
type Classifier struct {
	dict    *Dictionary
	schemas []Schema
}

// New creates a Classifier. DefaultSchemas are used when none are given.
func New(dict *Dictionary, schemas ...Schema) *Classifier {
	if dict == nil {
		dict = NewDictionary(nil, nil)
	}
	if len(schemas) == 0 {
		schemas = DefaultSchemas()
	}
	return &Classifier{dict: dict, schemas: schemas}
}

// Dictionary returns the dictionary the classifier resolves headers with.
func (c *Classifier) Dictionary() *Dictionary {
	return c.dict
}

// Classify scores the sheet's header row against every schema.
//
// A schema is accepted only when all of its requirements are met; among
// accepted schemas the one with the most requirements wins, then the one
// declared first. A content-like sheet (language plus publish or enabled
// column) that no schema accepts is Unrecognized; anything else unmatched is
// a GenericCollection.
func (c *Classifier) Classify(index int, sheet models.Sheet) Result {
	cols := c.dict.Resolve(sheet.Headers)
	res := Result{
		SheetClassification: models.SheetClassification{
			Index:       index,
			Title:       sheet.Title,
			ContentLike: cols.Has(FieldLang) && (cols.Has(FieldPublish) || cols.Has(FieldEnabled)),
		},
		Columns: cols,
	}

	var best, closest *Schema
	closestScore := -1
	var closestMissing []string
	for i := range c.schemas {
		s := &c.schemas[i]
		score, missing := s.Score(cols)
		if len(missing) == 0 {
			if best == nil || s.RequiredCount() > best.RequiredCount() {
				best = s
			}
			continue
		}
		if score > closestScore {
			closest, closestScore, closestMissing = s, score, missing
		}
	}

	switch {
	case best != nil:
		res.Class = best.Class
		res.Score = best.RequiredCount()
		res.Schema = best
	case res.ContentLike:
		res.Class = models.ClassUnrecognized
		if closest != nil {
			res.Score = closestScore
			res.Closest = closest.Class
			res.Missing = closestMissing
		}
	default:
		res.Class = models.ClassGenericCollection
	}
	return res
}

// ClassifyAll classifies sheets in source order.
func (c *Classifier) ClassifyAll(sheets []models.Sheet) []Result {
	out := make([]Result, len(sheets))
	for i, sheet := range sheets {
		out[i] = c.Classify(i, sheet)
	}
	return out
}
