package models

// AnyLanguage groups records that carry no language value.
const AnyLanguage = "*"

// Record is one dataset row keyed by its original header names.
type Record map[string]string

// ContentBundle holds the non-page datasets of a workbook.
type ContentBundle struct {
	// Strings maps language to key to translated value.
	Strings map[string]map[string]string `json:"strings"`
	// Collections maps sheet title to language to records.
	Collections map[string]map[string][]Record `json:"collections"`
}

// NewContentBundle returns an empty bundle ready for use.
func NewContentBundle() *ContentBundle {
	return &ContentBundle{
		Strings:     make(map[string]map[string]string),
		Collections: make(map[string]map[string][]Record),
	}
}
