package config

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var languageCode = regexp.MustCompile(`^[a-z]{2}$`)

// Validate checks the loaded configuration. Load calls it automatically;
// callers that change values afterwards (CLI flags) call it again.
func (c *Config) Validate() error {
	c.normalize()
	if err := c.Build.validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level, validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&c.Log.Format, validation.In("console", "json", "pretty")),
	)
}

func (b *BuildConfig) validate() error {
	languages := make([]any, len(b.Languages))
	for i, lang := range b.Languages {
		languages[i] = lang
	}
	return validation.ValidateStruct(b,
		validation.Field(&b.Languages, validation.Required, validation.Each(validation.Match(languageCode))),
		validation.Field(&b.DefaultLanguage, validation.Required, validation.In(languages...)),
		validation.Field(&b.Locales, validation.Each(validation.Match(languageCode))),
		validation.Field(&b.OutDir, validation.Required),
	)
}
