package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kostyll/HudlFfmpeg/internal/planstore"
)

func newPlansCommand(ctx *commandContext) *cobra.Command {
	plansCmd := &cobra.Command{
		Use:   "plans",
		Short: "Inspect and manage stored plans",
	}

	plansCmd.AddCommand(newPlansListCommand(ctx))
	plansCmd.AddCommand(newPlansShowCommand(ctx))
	plansCmd.AddCommand(newPlansRemoveCommand(ctx))

	return plansCmd
}

func newPlansListCommand(ctx *commandContext) *cobra.Command {
	var listStatuses []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := parseStatuses(listStatuses)
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *planstore.Store) error {
				records, err := store.List(cmd.Context(), statuses...)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No plans stored")
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Name", "Status", "Inputs", "Chains", "Outputs", "Updated"},
					buildPlanListRows(records),
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				))
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&listStatuses, "status", "s", nil, "Filter by status (built, invalid, failed)")
	return cmd
}

func newPlansShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show a stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *planstore.Store) error {
				var record *planstore.Record
				var err error
				if id, parseErr := strconv.ParseInt(args[0], 10, 64); parseErr == nil {
					record, err = store.GetByID(cmd.Context(), id)
				} else {
					record, err = store.GetByName(cmd.Context(), args[0])
				}
				if err != nil {
					return err
				}

				if jsonOutput {
					if record.Status != planstore.StatusBuilt {
						return writeJSON(cmd, map[string]any{
							"id":            record.ID,
							"name":          record.Name,
							"status":        record.Status,
							"error_kind":    record.ErrorKind,
							"error_message": record.ErrorMessage,
						})
					}
					plan, err := record.Plan()
					if err != nil {
						return err
					}
					return writeJSON(cmd, plan)
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				fmt.Fprintln(out, renderSectionHeader(fmt.Sprintf("#%d %s", record.ID, record.Name), colorize))
				fmt.Fprintf(out, "Status:  %s\n", record.Status)
				fmt.Fprintf(out, "Updated: %s\n", record.UpdatedAt.Format(time.RFC3339))
				if record.Status != planstore.StatusBuilt {
					kind := record.ErrorKind
					if kind == "" {
						kind = "unknown"
					}
					fmt.Fprintf(out, "Error (%s): %s\n", kind, record.ErrorMessage)
					return nil
				}
				plan, err := record.Plan()
				if err != nil {
					return err
				}
				renderPlan(out, plan)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the stored plan as JSON")
	return cmd
}

func newPlansRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>...",
		Short: "Remove stored plans",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, raw := range args {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid plan id %q", raw)
				}
				ids = append(ids, id)
			}
			return ctx.withStore(func(store *planstore.Store) error {
				out := cmd.OutOrStdout()
				for _, id := range ids {
					if err := store.Remove(cmd.Context(), id); err != nil {
						if errors.Is(err, planstore.ErrNotFound) {
							fmt.Fprintf(out, "Plan %d not found\n", id)
							continue
						}
						return err
					}
					fmt.Fprintf(out, "Plan %d removed\n", id)
				}
				return nil
			})
		},
	}
}

func parseStatuses(values []string) ([]planstore.Status, error) {
	statuses := make([]planstore.Status, 0, len(values))
	for _, raw := range values {
		status := planstore.Status(strings.ToLower(strings.TrimSpace(raw)))
		switch status {
		case planstore.StatusBuilt, planstore.StatusInvalid, planstore.StatusFailed:
			statuses = append(statuses, status)
		default:
			return nil, fmt.Errorf("unknown plan status %q", raw)
		}
	}
	return statuses, nil
}

func buildPlanListRows(records []*planstore.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.FormatInt(record.ID, 10),
			record.Name,
			string(record.Status),
			strconv.Itoa(record.Inputs),
			strconv.Itoa(record.Filterchains),
			strconv.Itoa(record.Outputs),
			record.UpdatedAt.Format(time.RFC3339),
		})
	}
	return rows
}
