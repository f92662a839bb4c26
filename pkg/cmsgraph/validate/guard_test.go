package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/classify"
	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

func TestGuardFailsOnUnrecognizedSheet(t *testing.T) {
	sheets := []models.Sheet{
		{Title: "Pages", Headers: []string{"lang", "publish", "slug", "template"}},
		{Title: "Drafts", Headers: []string{"lang", "publish", "notes"}},
	}
	results := classify.New(nil).ClassifyAll(sheets)
	diags := &models.Diagnostics{}

	report := Guard(sheets, results, diags)

	assert.False(t, report.Passed)
	require.Len(t, report.Sheets, 2)
	assert.Equal(t, models.ClassUnrecognized, report.Sheets[1].Classification)
	assert.Equal(t, []string{"lang", "publish", "notes"}, report.Sheets[1].Headers)

	require.Len(t, report.Diagnostics, 1)
	d := report.Diagnostics[0]
	assert.Equal(t, models.CodeUnrecognizedContentSheet, d.Code)
	assert.Equal(t, models.SeverityFatal, d.Severity)
	assert.Equal(t, "Drafts", d.Sheet)
	assert.Contains(t, d.Message, string(report.Sheets[1].Closest))
}

func TestGuardPassesWithWarnings(t *testing.T) {
	sheets := []models.Sheet{{Title: "Team", Headers: []string{"name"}}}
	diags := &models.Diagnostics{}
	diags.Warn(models.CodeOrphanMenuItem, "Menu", 3, "orphan")

	report := Guard(sheets, classify.New(nil).ClassifyAll(sheets), diags)

	assert.True(t, report.Passed)
	assert.Len(t, report.Diagnostics, 1)
}

func TestGuardFailsOnEarlierFatal(t *testing.T) {
	diags := &models.Diagnostics{}
	diags.Fatal(models.CodeMissingHomePage, "", 0, "no home")

	report := Guard(nil, nil, diags)
	assert.False(t, report.Passed)
	assert.Empty(t, report.Sheets)
}

func TestUnreadable(t *testing.T) {
	report := Unreadable("data/cms.xlsx", errors.New("zip: not a valid zip file"))

	assert.False(t, report.Passed)
	assert.NotNil(t, report.Sheets)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, models.CodeSourceUnreadable, report.Diagnostics[0].Code)
	assert.Contains(t, report.Diagnostics[0].Message, "data/cms.xlsx")
}
