package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph"
)

func newBuildCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Validate the workbook and write routes, menus and content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, f)
			if err != nil {
				return err
			}
			res, err := s.run("", cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !res.Passed() {
				return wrapAbortError(fmt.Errorf("%w: see %s", cmsgraph.ErrBuildAborted, s.cfg.Build.Report()))
			}

			files, err := res.Emit(s.cfg.Build.OutDir, s.cfg.Build.Pretty)
			if err != nil {
				return wrapEmitError(err)
			}
			s.logs.GetLogger("cmsgraph.cli").Info("artifacts written", "dir", s.cfg.Build.OutDir, "files", len(files))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(files), s.cfg.Build.OutDir)
			return nil
		},
	}
}
