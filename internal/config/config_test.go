package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory so ./cmsgraph.yaml is absent.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvPath, "")
	return dir
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "cmsgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"pl"}, cfg.Build.Languages)
	assert.Equal(t, "pl", cfg.Build.DefaultLanguage)
	assert.Equal(t, "data", cfg.Build.DataDir)
	assert.Equal(t, "dist/assets/data", cfg.Build.OutDir)
	assert.Equal(t, filepath.Join("dist/assets/data", "sheet_report.json"), cfg.Build.Report())
	assert.Equal(t, []string{"pl", "en", "de", "fr", "it", "ru", "ua"}, cfg.Build.Locales)
	assert.False(t, cfg.Build.MenuFromPages)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CMS_LANGUAGES", "PL, en")
	t.Setenv("DEFAULT_LANG", "en")
	t.Setenv("CMS_OUT_DIR", "out")
	t.Setenv("CMS_REPORT_PATH", "report.json")
	t.Setenv("CMS_MENU_FROM_PAGES", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"pl", "en"}, cfg.Build.Languages)
	assert.Equal(t, "en", cfg.Build.DefaultLanguage)
	assert.Equal(t, "report.json", cfg.Build.Report())
	assert.True(t, cfg.Build.MenuFromPages)
}

func TestLoadYAML(t *testing.T) {
	dir := isolate(t)
	writeYAML(t, dir, `
build:
  languages: [pl, en, de]
  source: data/cms/CMS.xlsx
  pretty: true
  synonyms:
    template: [widok]
log:
  level: debug
  format: json
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"pl", "en", "de"}, cfg.Build.Languages)
	assert.Equal(t, "data/cms/CMS.xlsx", cfg.Build.Source)
	assert.True(t, cfg.Build.Pretty)
	assert.Equal(t, map[string][]string{"template": {"widok"}}, cfg.Build.Synonyms)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, "build:\n  out_dir: from-yaml\n")
	t.Setenv("CMS_OUT_DIR", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Build.OutDir)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	t.Setenv(EnvPath, filepath.Join(dir, "missing.yaml"))
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no languages", func(c *Config) { c.Build.Languages = nil; c.Build.DefaultLanguage = "pl" }},
		{"bad language", func(c *Config) { c.Build.Languages = []string{"polski"} }},
		{"default not listed", func(c *Config) { c.Build.DefaultLanguage = "de" }},
		{"bad locale", func(c *Config) { c.Build.Locales = []string{"en-gb"} }},
		{"no out dir", func(c *Config) { c.Build.OutDir = "" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func validConfig() Config {
	return Config{
		Build: BuildConfig{
			Languages:       []string{"pl", "en"},
			DefaultLanguage: "pl",
			DataDir:         "data",
			OutDir:          "dist",
			Locales:         []string{"pl", "en"},
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}
