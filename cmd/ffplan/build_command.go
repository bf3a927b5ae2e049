package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kostyll/HudlFfmpeg/internal/command"
	"github.com/kostyll/HudlFfmpeg/internal/logging"
	"github.com/kostyll/HudlFfmpeg/internal/planfile"
	"github.com/kostyll/HudlFfmpeg/internal/planstore"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var save bool
	var probeAll bool
	var nameOverride string

	cmd := &cobra.Command{
		Use:   "build <plan.toml>",
		Short: "Build the stream graph described by a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := planfile.Load(args[0])
			if err != nil {
				return err
			}
			if name := strings.TrimSpace(nameOverride); name != "" {
				file.Name = name
			}
			if probeAll {
				for i := range file.Inputs {
					file.Inputs[i].Probe = true
				}
			}

			pipeline, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			buildCtx := logging.WithPlan(cmd.Context(), file.Name)
			c, buildErr := planfile.Build(buildCtx, pipeline, file)
			if buildErr != nil {
				if save {
					if err := ctx.withStore(func(store *planstore.Store) error {
						_, err := store.RecordFailure(cmd.Context(), file.Name, buildErr)
						return err
					}); err != nil {
						return fmt.Errorf("build %s: %w (recording failure: %v)", file.Name, buildErr, err)
					}
				}
				return fmt.Errorf("build %s: %w", file.Name, buildErr)
			}

			plan := command.Snapshot(c)
			var record *planstore.Record
			if save {
				if err := ctx.withStore(func(store *planstore.Store) error {
					var err error
					record, err = store.Save(cmd.Context(), file.Name, plan)
					return err
				}); err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, plan)
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderSectionHeader(file.Name, colorize))
			renderPlan(out, plan)
			if record != nil {
				fmt.Fprintf(out, "Saved plan %q as #%d\n", record.Name, record.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the plan snapshot as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Store the result in the plan store")
	cmd.Flags().BoolVar(&probeAll, "probe", false, "Probe every input regardless of the plan file")
	cmd.Flags().StringVar(&nameOverride, "name", "", "Override the plan name")
	return cmd
}
