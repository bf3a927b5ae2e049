package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kostyll/HudlFfmpeg/internal/command"
	"github.com/kostyll/HudlFfmpeg/internal/settings"
)

func renderPlan(out io.Writer, plan command.Plan) {
	fmt.Fprintf(out, "Command: %s\n", plan.CommandID)
	if plan.ParentID != "" {
		fmt.Fprintf(out, "Parent:  %s\n", plan.ParentID)
	}

	if len(plan.Inputs) == 0 {
		fmt.Fprintln(out, "No inputs")
	} else {
		fmt.Fprint(out, tableSpec{
			Title:   "Inputs",
			Headers: []string{"#", "Locator", "Receipt", "Probed", "Duration", "Video", "Audio", "Settings"},
			Rows:    buildInputRows(plan.Inputs),
			Aligns:  []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
		}.render())
		fmt.Fprintln(out)
	}

	if len(plan.Filterchains) > 0 {
		fmt.Fprint(out, tableSpec{
			Title:   "Filterchains",
			Headers: []string{"Chain", "Inputs", "Filters", "Outputs"},
			Rows:    buildChainRows(plan.Filterchains),
		}.render())
		fmt.Fprintln(out)
	}

	if len(plan.Outputs) == 0 {
		fmt.Fprintln(out, "No outputs")
		return
	}
	fmt.Fprint(out, tableSpec{
		Title:   "Outputs",
		Headers: []string{"#", "Locator", "Receipts", "Settings"},
		Rows:    buildOutputRows(plan.Outputs),
		Aligns:  []columnAlignment{alignRight},
	}.render())
	fmt.Fprintln(out)
}

func buildInputRows(inputs []command.PlanInput) [][]string {
	rows := make([][]string, 0, len(inputs))
	for i, in := range inputs {
		duration, video, audio := "-", "-", "-"
		if in.Probed {
			duration = strconv.FormatFloat(in.DurationSeconds, 'f', 1, 64) + "s"
			video = strconv.Itoa(in.VideoStreams)
			audio = strconv.Itoa(in.AudioStreams)
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			in.Locator,
			in.Receipt,
			yesNo(in.Probed),
			duration,
			video,
			audio,
			formatSettings(in.Settings),
		})
	}
	return rows
}

func buildChainRows(chains []command.PlanChain) [][]string {
	rows := make([][]string, 0, len(chains))
	for _, chain := range chains {
		expressions := make([]string, 0, len(chain.Edges))
		for _, edge := range chain.Edges {
			expressions = append(expressions, edge.Expression)
		}
		rows = append(rows, []string{
			chain.ID,
			strings.Join(chain.Inputs, ", "),
			strings.Join(expressions, " -> "),
			strings.Join(chain.Outputs, ", "),
		})
	}
	return rows
}

func buildOutputRows(outputs []command.PlanOutput) [][]string {
	rows := make([][]string, 0, len(outputs))
	for i, out := range outputs {
		rows = append(rows, []string{
			strconv.Itoa(i),
			out.Locator,
			strings.Join(out.Receipts, ", "),
			formatSettings(out.Settings),
		})
	}
	return rows
}

func formatSettings(items []settings.Setting) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.Value == "" {
			parts = append(parts, item.Name)
			continue
		}
		parts = append(parts, item.Name+"="+item.Value)
	}
	return strings.Join(parts, " ")
}
