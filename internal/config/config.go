// Package config loads cmsgraph settings from a YAML file and the environment.
package config

import (
	"path/filepath"
	"strings"
)

// Config is the root configuration.
type Config struct {
	Build BuildConfig `yaml:"build"`
	Log   LogConfig   `yaml:"log"`
}

// BuildConfig holds the settings of a build run.
type BuildConfig struct {
	Languages       []string            `yaml:"languages"        env:"CMS_LANGUAGES"       env-default:"pl" env-separator:","`
	DefaultLanguage string              `yaml:"default_language" env:"DEFAULT_LANG"`
	Source          string              `yaml:"source"           env:"CMS_SOURCE"`
	DataDir         string              `yaml:"data_dir"         env:"CMS_DATA_DIR"        env-default:"data"`
	OutDir          string              `yaml:"out_dir"          env:"CMS_OUT_DIR"         env-default:"dist/assets/data"`
	ReportPath      string              `yaml:"report_path"      env:"CMS_REPORT_PATH"`
	MenuFromPages   bool                `yaml:"menu_from_pages"  env:"CMS_MENU_FROM_PAGES" env-default:"false"`
	Pretty          bool                `yaml:"pretty"           env:"CMS_PRETTY"          env-default:"false"`
	Locales         []string            `yaml:"locales"          env:"CMS_LOCALES"         env-default:"pl,en,de,fr,it,ru,ua" env-separator:","`
	Synonyms        map[string][]string `yaml:"synonyms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
}

// Report returns the report path, defaulting to sheet_report.json in the
// output directory.
func (b BuildConfig) Report() string {
	if b.ReportPath != "" {
		return b.ReportPath
	}
	return filepath.Join(b.OutDir, "sheet_report.json")
}

// normalize trims and lower-cases language codes and fills the default
// language from the language list.
func (c *Config) normalize() {
	c.Build.Languages = codes(c.Build.Languages)
	c.Build.Locales = codes(c.Build.Locales)
	c.Build.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.Build.DefaultLanguage))
	if c.Build.DefaultLanguage == "" && len(c.Build.Languages) > 0 {
		c.Build.DefaultLanguage = c.Build.Languages[0]
	}
	c.Build.Source = strings.TrimSpace(c.Build.Source)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

func codes(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, code := range in {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}
