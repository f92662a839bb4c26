package cmsgraph

import (
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/content"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/menus"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/output"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/pages"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/reader"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/validate"
)

// Stage is a step of the build state machine. A build moves forward through
// the stages and ends in StageEmit or StageAbort.
type Stage string

const (
	StageLoad       Stage = "load"
	StageClassify   Stage = "classify"
	StageNormalize  Stage = "normalize"
	StageAggregate  Stage = "aggregate"
	StageBuildMenus Stage = "build_menus"
	StageValidate   Stage = "validate"
	StageEmit       Stage = "emit"
	StageAbort      Stage = "abort"
)

// Result holds everything a build produced. Artifacts are complete only
// when Passed reports true; the report is always set.
type Result struct {
	Stage    Stage
	Workbook *models.Workbook
	Sheets   []classify.Result
	Pages    []models.PageRecord
	Routes   models.RouteTable
	Bundles  map[string]*models.MenuBundle
	Content  *models.ContentBundle
	Report   models.ValidationReport
}

// Passed reports whether the build reached StageEmit.
func (r *Result) Passed() bool {
	return r != nil && r.Stage == StageEmit
}

// Artifacts returns the emit-ready outputs.
func (r *Result) Artifacts() output.Artifacts {
	return output.Artifacts{
		Routes:  r.Routes,
		Bundles: r.Bundles,
		Pages:   r.Pages,
		Content: r.Content,
	}
}

// Emit writes the artifacts under dir. It refuses to write anything for a
// build that did not pass.
func (r *Result) Emit(dir string, pretty bool) ([]string, error) {
	if !r.Passed() {
		return nil, ErrBuildAborted
	}
	files, err := output.Emit(dir, r.Artifacts(), pretty)
	if err != nil {
		return files, NewStageError(StageEmit, err)
	}
	return files, nil
}

// Load reads a source file into a workbook.
func Load(path string, opts Options) (*models.Workbook, error) {
	wb, err := reader.Open(path, opts.readerOptions())
	if err != nil {
		return nil, NewStageError(StageLoad, err)
	}
	return wb, nil
}

// Build loads the source at path and runs the pipeline over it. The error
// is non-nil only when the source could not be read; validation failures
// are reported through the result.
func Build(path string, opts Options) (*Result, error) {
	wb, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	return Run(wb, opts), nil
}

// Run classifies, normalizes, aggregates and validates a loaded workbook.
func Run(wb *models.Workbook, opts Options) *Result {
	log := opts.logger()
	langs := opts.languages()
	diags := &models.Diagnostics{}
	res := &Result{Stage: StageClassify, Workbook: wb}

	dict := classify.NewDictionary(opts.Synonyms, opts.locales())
	res.Sheets = classify.New(dict).ClassifyAll(wb.Sheets)
	for _, s := range res.Sheets {
		log.Debug("sheet classified", "sheet", s.Title, "class", s.Class, "score", s.Score)
	}

	res.Stage = StageNormalize
	norm := pages.NewNormalizer(dict, diags)
	pageSheets := make(map[int][]models.PageRecord)
	var items []models.MenuItem
	for i, s := range res.Sheets {
		sheet := wb.Sheets[i]
		switch s.Class {
		case models.ClassPageDefinitions:
			recs := norm.Normalize(sheet, s)
			pageSheets[i] = recs
			res.Pages = append(res.Pages, recs...)
		case models.ClassMenuDefinitions:
			items = append(items, menus.ExtractItems(sheet, s, opts.defaultLanguage())...)
		}
	}
	for i, s := range res.Sheets {
		if s.Class == models.ClassMetadataOverrides {
			pages.ApplyOverrides(res.Pages, wb.Sheets[i], s, diags)
		}
	}
	log.Debug("pages normalized", "pages", len(res.Pages), "menu_items", len(items))

	res.Stage = StageAggregate
	routes := pages.NewRouteBuilder(norm, diags)
	collector := content.NewCollector()
	for i, s := range res.Sheets {
		switch s.Class {
		case models.ClassPageDefinitions:
			routes.AddPages(pageSheets[i])
		case models.ClassRouteAliases:
			routes.AddAliases(wb.Sheets[i], s)
		default:
			collector.Add(wb.Sheets[i], s)
		}
	}
	res.Routes = routes.Table()
	res.Content = collector.Bundle()
	pages.CheckHome(res.Pages, langs, diags)

	res.Stage = StageBuildMenus
	builder := menus.NewBuilder(diags, opts.now())
	res.Bundles = make(map[string]*models.MenuBundle, len(langs))
	for _, lang := range langs {
		langItems := items
		if opts.MenuFromPages && !hasLanguage(items, lang) {
			langItems = menus.FromPages(res.Pages, res.Routes)
			diags.Add(models.Diagnostic{
				Severity: models.SeverityWarning,
				Code:     models.CodeMenuFallbackUsed,
				Lang:     lang,
				Message:  "no menu rows; menu derived from page records",
			})
		}
		res.Bundles[lang] = builder.Build(lang, langItems)
	}

	res.Stage = StageValidate
	res.Report = validate.Guard(wb.Sheets, res.Sheets, diags)
	if res.Report.Passed {
		res.Stage = StageEmit
	} else {
		res.Stage = StageAbort
	}
	log.Info("build finished",
		"stage", res.Stage,
		"pages", len(res.Pages),
		"routes", len(res.Routes),
		"diagnostics", len(res.Report.Diagnostics))
	return res
}

func hasLanguage(items []models.MenuItem, lang string) bool {
	for _, item := range items {
		if item.Lang == lang {
			return true
		}
	}
	return false
}
