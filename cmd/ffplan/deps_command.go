package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kostyll/HudlFfmpeg/internal/preflight"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external binaries and directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			results := preflight.RunAll(cfg)
			fmt.Fprintln(out, renderSectionHeader("Dependencies", colorize))
			for _, result := range results {
				fmt.Fprintln(out, renderStatusLine(result.Name, checkStatusKind(result), result.Detail, colorize))
			}

			required := 0
			for _, failed := range preflight.Failed(results) {
				if !failed.Optional {
					required++
				}
			}
			if required > 0 {
				return fmt.Errorf("%d required check(s) failed", required)
			}
			return nil
		},
	}
}

func checkStatusKind(result preflight.Result) statusKind {
	switch {
	case result.Passed:
		return statusOK
	case result.Optional:
		return statusWarn
	default:
		return statusError
	}
}
