package models

// Classification is the semantic role inferred for a sheet from its header row.
type Classification string

const (
	// ClassPageDefinitions holds one page variant per row.
	ClassPageDefinitions Classification = "page_definitions"
	// ClassMenuDefinitions holds one navigation item per row.
	ClassMenuDefinitions Classification = "menu_definitions"
	// ClassMetadataOverrides overrides page metadata per (key, language).
	ClassMetadataOverrides Classification = "metadata_overrides"
	// ClassContentBlocks holds free-form content blocks.
	ClassContentBlocks Classification = "content_blocks"
	// ClassFAQ holds question/answer pairs.
	ClassFAQ Classification = "faq"
	// ClassStringTable holds translated UI strings.
	ClassStringTable Classification = "string_table"
	// ClassRouteAliases maps a canonical key to one path column per language.
	ClassRouteAliases Classification = "route_aliases"
	// ClassGenericCollection is any sheet that does not look like content.
	ClassGenericCollection Classification = "generic_collection"
	// ClassUnrecognized is a content-like sheet that matched no schema.
	ClassUnrecognized Classification = "unrecognized"
)

// SheetClassification is the immutable classification result for one sheet.
type SheetClassification struct {
	// Index is the sheet position in the workbook.
	Index int `json:"index"`
	// Title is the sheet title.
	Title string `json:"title"`
	// Class is the assigned classification.
	Class Classification `json:"classification"`
	// Score is the number of required columns satisfied by the winning schema.
	Score int `json:"score"`
	// ContentLike reports a language column plus a publish/enabled-style column.
	ContentLike bool `json:"content_like"`
	// Closest is the best-scoring schema of an unrecognized sheet.
	Closest Classification `json:"closest,omitempty"`
	// Missing lists required fields of the closest schema when unrecognized.
	Missing []string `json:"missing,omitempty"`
}
