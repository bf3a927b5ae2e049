package command_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kostyll/HudlFfmpeg/internal/command"
	"github.com/kostyll/HudlFfmpeg/internal/filter"
	"github.com/kostyll/HudlFfmpeg/internal/settings"
)

func TestSnapshotDescribesGraph(t *testing.T) {
	c := newOwned(t)
	in, err := c.WithInputNoLoad("a.mp4", settings.ForInput(settings.Setting{Name: "ss", Value: "5"}))
	require.NoError(t, err)
	stage, err := c.WithStreamsFrom(in)
	require.NoError(t, err)
	chain, err := stage.Filter(filter.Scale{Width: 1280, Height: 720})
	require.NoError(t, err)
	out, err := chain.MapTo("out.mp4", settings.ForOutput(settings.Setting{Name: "c:v", Value: "libx264"}))
	require.NoError(t, err)

	plan := command.Snapshot(c)
	require.Equal(t, c.ID(), plan.CommandID)
	inputs, chains, outputs := plan.Counts()
	require.Equal(t, 1, inputs)
	require.Equal(t, 1, chains)
	require.Equal(t, 1, outputs)

	require.Equal(t, "a.mp4", plan.Inputs[0].Locator)
	require.Equal(t, in.Receipt().ID(), plan.Inputs[0].Receipt)
	require.Equal(t, []settings.Setting{{Name: "ss", Value: "5"}}, plan.Inputs[0].Settings)
	require.False(t, plan.Inputs[0].Probed)

	pc := plan.Filterchains[0]
	require.Equal(t, []string{in.Receipt().ID()}, pc.Inputs)
	require.Equal(t, "scale", pc.Edges[0].Filter)
	require.Equal(t, "scale=w=1280:h=720", pc.Edges[0].Expression)
	require.Equal(t, []string{chain.Receipts()[0].ID()}, pc.Outputs)

	require.Equal(t, out.ID(), plan.Outputs[0].ID)
	require.Equal(t, pc.Outputs, plan.Outputs[0].Receipts)

	data, err := json.Marshal(plan)
	require.NoError(t, err)
	var decoded command.Plan
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, plan, decoded)
}

func TestSnapshotOfEmptyCommand(t *testing.T) {
	plan := command.Snapshot(newOwned(t))
	require.Len(t, plan.Inputs, 0)
	require.Len(t, plan.Filterchains, 0)
	require.Len(t, plan.Outputs, 0)
	require.Equal(t, command.Plan{}, command.Snapshot(nil))
}
