package menus

import (
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-slug"
)

// MaxLabelLength caps label length in runes.
const MaxLabelLength = 120

// SanitizeLabel trims a label and caps its length.
func SanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if utf8.RuneCountInString(label) <= MaxLabelLength {
		return label
	}
	return strings.TrimSpace(string([]rune(label)[:MaxLabelLength]))
}

// SanitizeTarget keeps targets with an allowed scheme and replaces anything
// else with a generated "/{lang}/{slug}/" path. Allowed: http, https,
// root-relative paths, fragments, mailto and tel. Root-relative paths get a
// trailing slash unless the last segment looks like a file.
func SanitizeTarget(target, lang, label string) string {
	t := strings.TrimSpace(target)
	if t == "" || protocolRelative(t) {
		return GeneratedTarget(lang, label)
	}

	lower := strings.ToLower(t)
	for _, scheme := range []string{"http://", "https://", "mailto:", "tel:"} {
		if strings.HasPrefix(lower, scheme) {
			return t
		}
	}
	switch {
	case strings.HasPrefix(t, "#"):
		return t
	case strings.HasPrefix(t, "/"):
		return withTrailingSlash(t)
	}
	return GeneratedTarget(lang, label)
}

// protocolRelative reports targets a browser resolves against another host.
// Browsers read a backslash as a slash and drop tabs and newlines.
func protocolRelative(t string) bool {
	if strings.ContainsAny(t, "\t\r\n") {
		return true
	}
	return len(t) >= 2 && t[0] == '/' && (t[1] == '/' || t[1] == '\\')
}

// GeneratedTarget builds the fallback path for a label. Letters with
// diacritics and non-Latin scripts are transliterated before slugging.
func GeneratedTarget(lang, label string) string {
	s := ""
	if translit, err := slug.HashNormalize(label); err == nil {
		s, err = slug.Normalize(translit)
		if err != nil {
			s = ""
		}
	}
	if s == "" {
		s = "item"
	}
	return "/" + lang + "/" + s + "/"
}

func withTrailingSlash(t string) string {
	cut := strings.IndexAny(t, "?#")
	path, suffix := t, ""
	if cut >= 0 {
		path, suffix = t[:cut], t[cut:]
	}
	if strings.HasSuffix(path, "/") {
		return t
	}
	if last := path[strings.LastIndex(path, "/")+1:]; strings.Contains(last, ".") {
		return t
	}
	return path + "/" + suffix
}
