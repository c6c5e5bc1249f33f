package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcpackr/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [pack-dir]",
		Short: "Validate a resource pack and the output location before porting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			packDir, err := packDirArg(args)
			if err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), cfg, packDir)
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}

			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d of %d checks failed", len(failed), len(results))
			}
			fmt.Fprintln(out, renderStatusLine("Summary", statusOK, "ready to port", colorize))
			return nil
		},
	}
}
