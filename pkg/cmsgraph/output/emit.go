package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// File names inside the output directory.
const (
	RoutesFile  = "routes.json"
	PagesFile   = "pages.json"
	ContentFile = "content.json"
	MenuDir     = "menu"
	ReportFile  = "sheet_report.json"
)

// Artifacts are the outputs of a passing build.
type Artifacts struct {
	Routes  models.RouteTable
	Bundles map[string]*models.MenuBundle
	Pages   []models.PageRecord
	Content *models.ContentBundle
}

// BundleFile returns the relative path of a language's menu bundle.
func BundleFile(lang string) string {
	return filepath.Join(MenuDir, "bundle_"+lang+".json")
}

// Emit writes every artifact under dir and returns the written paths.
// Files are first written to a staging directory inside dir and moved into
// place only when all of them serialized and wrote cleanly. The moves are
// one rename per file, so a failing rename leaves the earlier files
// replaced; the returned paths name them. Menu bundles of languages that
// are no longer emitted are removed once every file is in place.
func Emit(dir string, a Artifacts, pretty bool) ([]string, error) {
	files, err := render(a, pretty)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	stage, err := os.MkdirTemp(dir, ".cmsgraph-")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(stage)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writeFile(filepath.Join(stage, name), files[name]); err != nil {
			return nil, err
		}
	}

	written := make([]string, 0, len(names))
	for _, name := range names {
		dst := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return written, fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
		}
		if err := os.Rename(filepath.Join(stage, name), dst); err != nil {
			return written, fmt.Errorf("move %s into place: %w", name, err)
		}
		written = append(written, dst)
	}
	if err := removeStaleBundles(dir, files); err != nil {
		return written, err
	}
	return written, nil
}

func removeStaleBundles(dir string, keep map[string][]byte) error {
	stale, err := filepath.Glob(filepath.Join(dir, MenuDir, "bundle_*.json"))
	if err != nil {
		return fmt.Errorf("list menu bundles: %w", err)
	}
	for _, path := range stale {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return fmt.Errorf("list menu bundles: %w", err)
		}
		if _, ok := keep[rel]; ok {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove stale bundle %s: %w", rel, err)
		}
	}
	return nil
}

func render(a Artifacts, pretty bool) (map[string][]byte, error) {
	routes := a.Routes
	if routes == nil {
		routes = models.RouteTable{}
	}
	pages := a.Pages
	if pages == nil {
		pages = []models.PageRecord{}
	}
	content := a.Content
	if content == nil {
		content = models.NewContentBundle()
	}

	values := map[string]any{
		RoutesFile:  routes,
		PagesFile:   pages,
		ContentFile: content,
	}
	for lang, bundle := range a.Bundles {
		values[BundleFile(lang)] = bundle
	}

	files := make(map[string][]byte, len(values))
	for name, v := range values {
		data, err := ToJSON(v, pretty)
		if err != nil {
			return nil, fmt.Errorf("serialize %s: %w", name, err)
		}
		files[name] = data
	}
	return files, nil
}

// WriteReport writes the validation report to path, replacing any previous
// report atomically.
func WriteReport(path string, report models.ValidationReport, pretty bool) error {
	if report.Sheets == nil {
		report.Sheets = []models.SheetReport{}
	}
	if report.Diagnostics == nil {
		report.Diagnostics = []models.Diagnostic{}
	}
	data, err := ToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialize report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*.json")
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("create report: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
