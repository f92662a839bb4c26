package reader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

var errNoRecords = errors.New("no record lists found")

// ReadRecords reads a JSON or YAML document holding the equivalent of a workbook.
//
// Two shapes are accepted: a mapping of tab name to a list of records, where
// tab order follows key order, or a single list of records forming one tab
// named after the file. Entries that are not record lists are ignored.
func ReadRecords(path string) (*models.Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewSourceError(path, "", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewSourceError(path, "", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	wb := &models.Workbook{BookName: filepath.Base(path)}
	switch root.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			title, list := root.Content[i].Value, root.Content[i+1]
			if list.Kind != yaml.SequenceNode {
				continue
			}
			wb.Sheets = append(wb.Sheets, sheetFromRecords(title, list))
		}
	case yaml.SequenceNode:
		wb.Sheets = append(wb.Sheets, sheetFromRecords(baseName(path), root))
	}

	if len(wb.Sheets) == 0 {
		return nil, NewSourceError(path, "", errNoRecords)
	}
	return wb, nil
}

// sheetFromRecords turns a list of mappings into a sheet. Headers are the
// union of record keys in first-seen order.
func sheetFromRecords(title string, list *yaml.Node) models.Sheet {
	sheet := models.Sheet{Title: title}
	index := make(map[string]int)

	type record struct{ keys, values []string }
	var records []record
	for _, item := range list.Content {
		if item.Kind != yaml.MappingNode {
			continue
		}
		var keys, values []string
		for i := 0; i+1 < len(item.Content); i += 2 {
			key := strings.TrimSpace(item.Content[i].Value)
			if key == "" {
				continue
			}
			if _, ok := index[key]; !ok {
				index[key] = len(sheet.Headers)
				sheet.Headers = append(sheet.Headers, key)
			}
			keys = append(keys, key)
			values = append(values, scalarValue(item.Content[i+1]))
		}
		records = append(records, record{keys, values})
	}

	for i, rec := range records {
		cells := make([]string, len(sheet.Headers))
		for j, key := range rec.keys {
			cells[index[key]] = rec.values[j]
		}
		row := models.Row{R: i + 2, Cells: cells}
		if row.Blank() {
			continue
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet
}

func scalarValue(n *yaml.Node) string {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return ""
	}
	return strings.TrimSpace(n.Value)
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
