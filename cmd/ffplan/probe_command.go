package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kostyll/HudlFfmpeg/internal/media/ffprobe"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "probe <file>",
		Short: "Inspect a media file with ffprobe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prober, err := ctx.prober()
			if err != nil {
				return err
			}
			result, err := prober.Probe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:     %s\n", args[0])
			if result.Format.FormatName != "" {
				fmt.Fprintf(out, "Format:   %s\n", result.Format.FormatName)
			}
			fmt.Fprintf(out, "Duration: %.1fs\n", result.DurationSeconds())
			if size := result.SizeBytes(); size > 0 {
				fmt.Fprintf(out, "Size:     %d bytes\n", size)
			}
			if len(result.Streams) == 0 {
				fmt.Fprintln(out, "No streams")
				return nil
			}
			fmt.Fprint(out, renderTable(
				[]string{"Index", "Type", "Codec", "Details"},
				buildStreamRows(result.Streams),
				[]columnAlignment{alignRight},
			))
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the probe result as JSON")
	return cmd
}

func buildStreamRows(streams []ffprobe.Stream) [][]string {
	rows := make([][]string, 0, len(streams))
	for _, stream := range streams {
		details := ""
		switch stream.CodecType {
		case "video":
			details = fmt.Sprintf("%dx%d", stream.Width, stream.Height)
			if stream.AvgFrameRate != "" && stream.AvgFrameRate != "0/0" {
				details += " @ " + stream.AvgFrameRate
			}
		case "audio":
			details = fmt.Sprintf("%d ch", stream.Channels)
			if stream.SampleRate != "" {
				details += ", " + stream.SampleRate + " Hz"
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(stream.Index),
			stream.CodecType,
			stream.CodecName,
			details,
		})
	}
	return rows
}
