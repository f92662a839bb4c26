package models

import "time"

// MenuItem is one enabled navigation row after sanitization.
type MenuItem struct {
	Lang        string
	Label       string
	Target      string
	ParentLabel string
	Order       int
	Column      int

	// Sheet and Row locate the source row.
	Sheet string
	Row   int
}

// MenuNode is one entry of the emitted navigation tree.
type MenuNode struct {
	// ID is a deterministic identifier derived from language and label.
	ID string `json:"id"`
	// Label is the display text.
	Label string `json:"label"`
	// Target is the sanitized link target.
	Target string `json:"target"`
	// Order is the sort weight within the parent.
	Order int `json:"order"`
	// Column is the display column of a child node (1-4).
	Column int `json:"column,omitempty"`
	// Children groups nested nodes into non-empty column buckets.
	Children []MenuColumn `json:"children,omitempty"`
}

// MenuColumn is one column bucket of child nodes.
type MenuColumn struct {
	// Column is the bucket index (1-4).
	Column int `json:"column"`
	// Items are the ordered children in the bucket.
	Items []MenuNode `json:"items"`
}

// MenuBundle is the versioned navigation tree for one language.
type MenuBundle struct {
	// Lang is the bundle language.
	Lang string `json:"language"`
	// GeneratedAt is the build time; it is not part of Version.
	GeneratedAt time.Time `json:"generatedAt"`
	// Items are the ordered top-level nodes.
	Items []MenuNode `json:"items"`
	// Version is a content-derived fingerprint of Items.
	Version string `json:"version"`
}
