package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph"
)

func newSnapshotCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot [source]",
		Short: "Print how every sheet is classified without writing artifacts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, f)
			if err != nil {
				return err
			}
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			res, err := s.run(source, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			printSnapshot(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func printSnapshot(w io.Writer, res *cmsgraph.Result) {
	for _, sum := range cmsgraph.Summarize(res) {
		fmt.Fprintf(w, "%s [%s]\n", sum.Title, sum.Classification)
		fmt.Fprintf(w, "  headers: %s\n", strings.Join(sum.Headers, ", "))
		for _, lang := range sum.Languages() {
			fmt.Fprintf(w, "  %s: %d rows, %d published\n", lang, sum.Rows[lang], sum.Published[lang])
		}
	}
	verdict := "PASS"
	if !res.Passed() {
		verdict = "FAIL"
	}
	fmt.Fprintf(w, "verdict: %s (%d diagnostics)\n", verdict, len(res.Report.Diagnostics))
}
