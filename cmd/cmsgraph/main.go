// Package main provides the CLI entry point for cmsgraph.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// flags are the command-line overrides shared by every subcommand.
type flags struct {
	config        string
	languages     []string
	source        string
	dataDir       string
	outDir        string
	reportPath    string
	pretty        bool
	menuFromPages bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "cmsgraph",
		Short: "Compile a CMS workbook into routes, menus and content",
		Long: `cmsgraph reads the CMS workbook (pages, menus, route aliases, strings)
and writes the route table, per-language menu bundles and content datasets
as JSON. A validation report is written on every run.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "Config file (default: $CMSGRAPH_CONFIG or ./cmsgraph.yaml)")
	pf.StringSliceVar(&f.languages, "lang", nil, "Required languages, comma separated")
	pf.StringVar(&f.source, "source", "", "Source workbook (default: resolved under the data dir)")
	pf.StringVar(&f.dataDir, "data-dir", "", "Directory searched for the source workbook")
	pf.StringVar(&f.outDir, "out", "", "Artifact output directory")
	pf.StringVar(&f.reportPath, "report", "", "Validation report path (default: <out>/sheet_report.json)")
	pf.BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	pf.BoolVar(&f.menuFromPages, "menu-from-pages", false, "Derive menus from pages for languages without menu rows")

	rootCmd.AddCommand(newBuildCmd(f), newSnapshotCmd(f))
	return rootCmd
}
