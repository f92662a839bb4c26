package reader

import (
	"os"
	"path/filepath"
)

// DefaultCandidates lists the conventional source names in priority order.
var DefaultCandidates = []string{
	"CMS.xlsx", "cms.xlsx", "menu.xlsx",
	"cms.json", "CMS.json",
	"cms.yaml", "cms.yml",
	"cms.csv", "CMS.csv",
}

// Resolve picks the source path: the explicit override when given, otherwise
// the first conventional candidate under <dataDir>/cms and then <dataDir>.
func Resolve(explicit, dataDir string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", NewSourceError(explicit, "", err)
		}
		return explicit, nil
	}

	roots := []string{filepath.Join(dataDir, "cms"), dataDir}
	for _, root := range roots {
		for _, name := range DefaultCandidates {
			p := filepath.Join(root, name)
			if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
				return p, nil
			}
		}
	}

	return "", NewSourceError(dataDir, "", ErrSourceNotFound)
}
