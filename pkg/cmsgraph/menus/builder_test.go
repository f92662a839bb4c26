package menus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

var menuHeaders = []string{"lang", "label", "href", "enabled", "parent", "order", "col"}

func menuSheet(t *testing.T, rows ...[]string) []models.MenuItem {
	t.Helper()
	s := models.Sheet{Title: "Menu", Headers: menuHeaders}
	for i, cells := range rows {
		s.Rows = append(s.Rows, models.Row{R: i + 2, Cells: cells})
	}
	res := classify.New(nil).Classify(0, s)
	require.Equal(t, models.ClassMenuDefinitions, res.Class)
	return ExtractItems(s, res, "pl")
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestBuildDeduplicatesLabels(t *testing.T) {
	items := menuSheet(t,
		[]string{"pl", "Kontakt", "/pl/kontakt/", "1", "", "1", ""},
		[]string{"pl", "Kontakt", "/pl/kontakt-2/", "1", "", "2", ""},
	)
	diags := &models.Diagnostics{}
	bundle := NewBuilder(diags, nil).Build("pl", items)

	require.Len(t, bundle.Items, 1)
	assert.Equal(t, "/pl/kontakt/", bundle.Items[0].Target)
	require.Equal(t, 1, diags.Count(models.CodeDuplicateMenuLabel))

	d := diags.Items()[0]
	assert.Equal(t, models.SeverityWarning, d.Severity)
	assert.Equal(t, 3, d.Row)
	assert.Contains(t, d.Message, "row 2")
	assert.Contains(t, d.Message, "row 3")
}

func TestBuildReplacesUnsafeTargets(t *testing.T) {
	items := menuSheet(t,
		[]string{"pl", "Kontakt", "javascript:alert(1)", "1", "", "", ""},
	)
	bundle := NewBuilder(&models.Diagnostics{}, nil).Build("pl", items)

	require.Len(t, bundle.Items, 1)
	assert.Equal(t, "/pl/kontakt/", bundle.Items[0].Target)
}

func TestBuildColumns(t *testing.T) {
	items := menuSheet(t,
		[]string{"pl", "About", "/pl/o-nas/", "1", "", "2", ""},
		[]string{"pl", "Services", "/pl/uslugi/", "1", "", "1", ""},
		[]string{"pl", "A", "/pl/uslugi/a/", "1", "Services", "1", "1"},
		[]string{"pl", "B", "/pl/uslugi/b/", "1", "Services", "1", "2"},
		[]string{"pl", "C", "/pl/uslugi/c/", "1", "Services", "2", "1"},
		[]string{"pl", "Hidden", "/pl/x/", "0", "", "", ""},
		[]string{"en", "Other", "/en/", "1", "", "", ""},
	)
	bundle := NewBuilder(&models.Diagnostics{}, nil).Build("pl", items)

	require.Len(t, bundle.Items, 2)
	services, about := bundle.Items[0], bundle.Items[1]
	assert.Equal(t, "Services", services.Label)
	assert.Equal(t, "About", about.Label)
	assert.Empty(t, about.Children)

	require.Len(t, services.Children, 2)
	assert.Equal(t, 1, services.Children[0].Column)
	assert.Equal(t, []string{"A", "C"}, labels(services.Children[0].Items))
	assert.Equal(t, 2, services.Children[1].Column)
	assert.Equal(t, []string{"B"}, labels(services.Children[1].Items))
	assert.Equal(t, 2, services.Children[1].Items[0].Column)
}

func TestBuildOrdersByOrderThenLabel(t *testing.T) {
	items := menuSheet(t,
		[]string{"pl", "beta", "/b/", "1", "", "", ""},
		[]string{"pl", "Alfa", "/a/", "1", "", "", ""},
		[]string{"pl", "Zeta", "/z/", "1", "", "1", ""},
	)
	bundle := NewBuilder(&models.Diagnostics{}, nil).Build("pl", items)

	assert.Equal(t, []string{"Zeta", "Alfa", "beta"}, labels(bundle.Items))
	assert.Equal(t, models.DefaultOrder, bundle.Items[1].Order)
}

func TestBuildOrphans(t *testing.T) {
	items := menuSheet(t,
		[]string{"pl", "Home", "/pl/", "1", "", "", ""},
		[]string{"pl", "Lost", "/pl/lost/", "1", "Missing", "", ""},
	)
	diags := &models.Diagnostics{}
	bundle := NewBuilder(diags, nil).Build("pl", items)

	require.Len(t, bundle.Items, 1)
	assert.Empty(t, bundle.Items[0].Children)
	assert.Equal(t, 1, diags.Count(models.CodeOrphanMenuItem))
}

func TestExtractItems(t *testing.T) {
	items := menuSheet(t,
		[]string{"", " Oferta ", "/oferta", "yes", "", "x", "9"},
		[]string{"pl", "  ", "/pusty/", "1", "", "", ""},
	)

	require.Len(t, items, 1)
	assert.Equal(t, models.MenuItem{
		Lang:   "pl",
		Label:  "Oferta",
		Target: "/oferta/",
		Order:  models.DefaultOrder,
		Column: 1,
		Sheet:  "Menu",
		Row:    2,
	}, items[0])
}

func TestVersionIgnoresGenerationTime(t *testing.T) {
	rows := [][]string{
		{"pl", "Services", "/pl/uslugi/", "1", "", "1", ""},
		{"pl", "About", "/pl/o-nas/", "1", "", "2", ""},
	}
	items := menuSheet(t, rows...)

	first := NewBuilder(&models.Diagnostics{}, fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))).Build("pl", items)
	second := NewBuilder(&models.Diagnostics{}, fixedClock(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))).Build("pl", items)

	assert.NotEqual(t, first.GeneratedAt, second.GeneratedAt)
	assert.Equal(t, first.Version, second.Version)
	assert.Regexp(t, `^sha256:[0-9a-f]{64}$`, first.Version)

	// Reversed source rows produce the same ordered tree.
	reversed := menuSheet(t, rows[1], rows[0])
	third := NewBuilder(&models.Diagnostics{}, nil).Build("pl", reversed)
	assert.Equal(t, first.Version, third.Version)
	assert.Equal(t, first.Items, third.Items)
}

func TestVersionTracksOrderChanges(t *testing.T) {
	before := NewBuilder(&models.Diagnostics{}, nil).Build("pl", menuSheet(t,
		[]string{"pl", "Services", "/pl/uslugi/", "1", "", "1", ""},
		[]string{"pl", "About", "/pl/o-nas/", "1", "", "2", ""},
	))
	after := NewBuilder(&models.Diagnostics{}, nil).Build("pl", menuSheet(t,
		[]string{"pl", "Services", "/pl/uslugi/", "1", "", "3", ""},
		[]string{"pl", "About", "/pl/o-nas/", "1", "", "2", ""},
	))

	assert.NotEqual(t, before.Version, after.Version)
	assert.Equal(t, []string{"About", "Services"}, labels(after.Items))
}

func TestNodeIDIsStable(t *testing.T) {
	assert.Equal(t, NodeID("pl", "Kontakt"), NodeID("pl", "Kontakt"))
	assert.NotEqual(t, NodeID("pl", "Kontakt"), NodeID("en", "Kontakt"))
	assert.NotEmpty(t, NodeID("pl", "Kontakt"))
}

func TestBuildEmptyLanguage(t *testing.T) {
	bundle := NewBuilder(&models.Diagnostics{}, nil).Build("de", nil)
	assert.Equal(t, "de", bundle.Lang)
	assert.NotNil(t, bundle.Items)
	assert.Empty(t, bundle.Items)
	assert.Equal(t, Fingerprint(nil), bundle.Version)
}

func labels(nodes []models.MenuNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Label
	}
	return out
}
