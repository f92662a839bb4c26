package models

import "strings"

// HomeKey is the canonical key of every language's home page.
const HomeKey = "home"

// DefaultOrder is the ordering assigned when no order value is given.
const DefaultOrder = 999

// PageRecord is one published page variant in one language.
type PageRecord struct {
	Lang         string         `json:"lang"`
	CanonicalKey string         `json:"canonical_key"`
	RelativePath string         `json:"relative_path"`
	ParentKey    string         `json:"parent_key,omitempty"`
	Template     string         `json:"template"`
	Order        int            `json:"order"`
	Publish      bool           `json:"publish"`
	Metadata     map[string]any `json:"metadata,omitempty"`

	// Home is set when the row's path resolves to the language root, even
	// when an explicit key names the page differently.
	Home bool `json:"home,omitempty"`

	// Sheet and Row locate the source row.
	Sheet string `json:"sheet"`
	Row   int    `json:"row"`
}

// IsHome reports whether the record is its language's home page.
func (p PageRecord) IsHome() bool {
	return p.Home || p.CanonicalKey == HomeKey
}

// Title returns the first non-empty title-like metadata value.
func (p PageRecord) Title() string {
	for _, want := range []string{"title", "h1", "seo_title", "meta_title"} {
		for key, v := range p.Metadata {
			if strings.ToLower(strings.TrimSpace(key)) != want {
				continue
			}
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// URL returns the root-relative address of the page.
func (p PageRecord) URL() string {
	return PageURL(p.Lang, p.RelativePath)
}

// PageURL joins a language and a relative path into "/{lang}/{path}/".
func PageURL(lang, rel string) string {
	rel = strings.Trim(rel, "/")
	if rel == "" {
		return "/" + lang + "/"
	}
	return "/" + lang + "/" + rel + "/"
}
