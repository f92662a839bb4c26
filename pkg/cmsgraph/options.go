// Package cmsgraph compiles a CMS workbook into routes, menu bundles and
// content datasets.
package cmsgraph

import (
	"strings"
	"time"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/reader"
)

// DefaultLanguages are required when no languages are configured.
var DefaultLanguages = []string{"pl"}

// Options configures a build.
type Options struct {
	// Languages must each have a published home page. One menu bundle is
	// built per language.
	Languages []string
	// DefaultLanguage is assigned to menu rows with no language value.
	// Defaults to the first of Languages.
	DefaultLanguage string
	// Locales are the language codes recognised in path prefixes and
	// route-alias columns, added to Languages.
	Locales []string
	// Synonyms extend the header dictionary.
	Synonyms map[classify.Field][]string
	// MenuFromPages derives menus from page records for languages with no
	// menu rows.
	MenuFromPages bool
	// MaxBlankRun bounds the scan of sheets without a recorded dimension.
	MaxBlankRun int
	// Now stamps menu bundles. Defaults to time.Now.
	Now func() time.Time
	// Logger receives progress messages. Defaults to a no-op logger.
	Logger Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Languages: DefaultLanguages}
}

// languages returns the normalized required languages.
func (o Options) languages() []string {
	src := o.Languages
	if len(src) == 0 {
		src = DefaultLanguages
	}
	seen := make(map[string]bool, len(src))
	out := make([]string, 0, len(src))
	for _, lang := range src {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" || seen[lang] {
			continue
		}
		seen[lang] = true
		out = append(out, lang)
	}
	return out
}

func (o Options) defaultLanguage() string {
	if lang := strings.ToLower(strings.TrimSpace(o.DefaultLanguage)); lang != "" {
		return lang
	}
	return o.languages()[0]
}

func (o Options) locales() []string {
	base := o.Locales
	if len(base) == 0 {
		base = classify.DefaultLocales
	}
	return append(append([]string{}, base...), o.languages()...)
}

func (o Options) now() func() time.Time {
	if o.Now != nil {
		return o.Now
	}
	return time.Now
}

func (o Options) logger() Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return nopLogger{}
}

func (o Options) readerOptions() reader.Options {
	return reader.Options{MaxBlankRun: o.MaxBlankRun}
}
