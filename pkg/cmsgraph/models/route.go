package models

import "sort"

// RouteTable maps a canonical key to the relative path of each language variant.
// A language missing under a key means that variant does not exist.
type RouteTable map[string]map[string]string

// Set records path for (key, lang) and returns the previous path, if any.
func (t RouteTable) Set(key, lang, path string) (string, bool) {
	langs, ok := t[key]
	if !ok {
		langs = make(map[string]string)
		t[key] = langs
	}
	prev, had := langs[lang]
	langs[lang] = path
	return prev, had
}

// Lookup returns the path of (key, lang).
func (t RouteTable) Lookup(key, lang string) (string, bool) {
	langs, ok := t[key]
	if !ok {
		return "", false
	}
	path, ok := langs[lang]
	return path, ok
}

// Keys returns the canonical keys in sorted order.
func (t RouteTable) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
