package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kras-trans/cmsgraph/internal/config"
	"github.com/kras-trans/cmsgraph/internal/logging"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/output"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/reader"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/validate"
)

// session is the configuration and logging of one command invocation.
type session struct {
	cfg  *config.Config
	logs logging.Provider
}

// loadSession reads the config and applies the flags the user set.
func loadSession(cmd *cobra.Command, f *flags) (*session, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, wrapConfigError(err)
	}

	changed := cmd.Flags().Changed
	if changed("lang") {
		cfg.Build.Languages = f.languages
		if !contains(f.languages, cfg.Build.DefaultLanguage) {
			cfg.Build.DefaultLanguage = ""
		}
	}
	if changed("source") {
		cfg.Build.Source = f.source
	}
	if changed("data-dir") {
		cfg.Build.DataDir = f.dataDir
	}
	if changed("out") {
		cfg.Build.OutDir = f.outDir
	}
	if changed("report") {
		cfg.Build.ReportPath = f.reportPath
	}
	if changed("pretty") {
		cfg.Build.Pretty = f.pretty
	}
	if changed("menu-from-pages") {
		cfg.Build.MenuFromPages = f.menuFromPages
	}
	if err := cfg.Validate(); err != nil {
		return nil, wrapConfigError(fmt.Errorf("config: validate: %w", err))
	}

	logs, err := logging.NewGoLogger(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, wrapConfigError(err)
	}
	return &session{cfg: cfg, logs: logs}, nil
}

// options converts the build config into pipeline options for one source.
func (s *session) options(source string) cmsgraph.Options {
	b := s.cfg.Build
	var synonyms map[classify.Field][]string
	if len(b.Synonyms) > 0 {
		synonyms = make(map[classify.Field][]string, len(b.Synonyms))
		for field, names := range b.Synonyms {
			synonyms[classify.Field(classify.NormalizeHeader(field))] = names
		}
	}
	return cmsgraph.Options{
		Languages:       b.Languages,
		DefaultLanguage: b.DefaultLanguage,
		Locales:         b.Locales,
		Synonyms:        synonyms,
		MenuFromPages:   b.MenuFromPages,
		Logger: s.logs.GetLogger("cmsgraph.build").WithFields(map[string]any{
			"source":    source,
			"languages": strings.Join(b.Languages, ","),
		}),
	}
}

// run resolves the source and runs the pipeline. The report is written
// whether or not the build passed; when the source cannot be read the
// report carries the single SOURCE_UNREADABLE diagnostic.
func (s *session) run(source string, stderr io.Writer) (*cmsgraph.Result, error) {
	b := s.cfg.Build
	log := s.logs.GetLogger("cmsgraph.cli")

	if source == "" {
		source = b.Source
	}
	path, err := reader.Resolve(source, b.DataDir)
	var res *cmsgraph.Result
	if err == nil {
		res, err = cmsgraph.Build(path, s.options(path))
	}
	if err != nil {
		if source == "" {
			source = b.DataDir
		}
		if werr := s.writeReport(validate.Unreadable(source, err), stderr); werr != nil {
			log.Error("report not written", "error", werr)
		}
		return nil, wrapSourceError(err)
	}

	log.Info("source loaded", "path", path, "sheets", len(res.Sheets))
	return res, s.writeReport(res.Report, stderr)
}

func (s *session) writeReport(report models.ValidationReport, stderr io.Writer) error {
	for _, d := range report.Diagnostics {
		fmt.Fprintln(stderr, d.String())
	}
	path := s.cfg.Build.Report()
	if err := output.WriteReport(path, report, s.cfg.Build.Pretty); err != nil {
		return wrapEmitError(err)
	}
	s.logs.GetLogger("cmsgraph.cli").Debug("report written", "path", path)
	return nil
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), want) {
			return true
		}
	}
	return false
}
