package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kostyll/HudlFfmpeg/internal/command"
	"github.com/kostyll/HudlFfmpeg/internal/fault"
	"github.com/kostyll/HudlFfmpeg/internal/media/ffprobe"
	"github.com/kostyll/HudlFfmpeg/internal/settings"
)

func TestUnownedCommandRejectsEveryOperation(t *testing.T) {
	c := command.New()
	ctx := context.Background()
	out := settings.ForOutput()

	ops := map[string]func() error{
		"with input":              func() error { _, err := c.WithInput(ctx, "a.mp4"); return err },
		"with input no load":      func() error { _, err := c.WithInputNoLoad("a.mp4"); return err },
		"with inputs":             func() error { _, err := c.WithInputs(ctx, []string{"a.mp4"}); return err },
		"with inputs empty":       func() error { _, err := c.WithInputsNoLoad(nil); return err },
		"with output":             func() error { _, err := c.WithOutput("out.mp4", out); return err },
		"with output bad role":    func() error { _, err := c.WithOutput("out.mp4", settings.ForInput()); return err },
		"with outputs":            func() error { _, err := c.WithOutputs([]string{"out.mp4"}); return err },
		"receipt at":              func() error { _, err := c.ResourceReceiptAt(0); return err },
		"last receipt":            func() error { _, _, err := c.LastInputReceipt(); return err },
		"with stream list":        func() error { _, err := c.WithStreamList(nil); return err },
		"with streams":            func() error { _, err := c.WithStreams(); return err },
		"with stream at":          func() error { _, err := c.WithStreamAt(0); return err },
		"with streams from":       func() error { _, err := c.WithStreamsFrom(nil); return err },
		"with streams from chain": func() error { _, err := c.WithStreamsFromFilterchain(nil); return err },
		"with all streams":        func() error { _, err := c.WithAllStreams(); return err },
		"apply filters":           func() error { _, err := c.ApplyFilters(nil); return err },
		"sub command":             func() error { _, err := c.NewSubCommand(); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			requireKind(t, op(), fault.ErrPrecondition)
		})
	}
	require.Len(t, c.Resources(), 0)
	require.Len(t, c.Outputs(), 0)
}

func TestWithInputNoLoadAppliesDefaults(t *testing.T) {
	c := newOwned(t)

	in, err := c.WithInputNoLoad("a.mp4")
	require.NoError(t, err)
	require.Equal(t, "a.mp4", in.Resource().Locator())
	require.Equal(t, settings.RoleInput, in.Settings().Role())
	require.False(t, in.Resource().HasMetadata())
	require.False(t, in.Receipt().IsZero())
	require.Equal(t, command.ProducedByResource, in.Receipt().Producer())
	require.Equal(t, in.ID(), in.Receipt().Source())
	require.True(t, in.Command() == c)
}

func TestWithInputValidation(t *testing.T) {
	c := newOwned(t)

	_, err := c.WithInputNoLoad("  ")
	requireKind(t, err, fault.ErrValidation)
	_, err = c.WithInputNoLoad("a.mp4", settings.ForOutput())
	requireKind(t, err, fault.ErrValidation)
	_, err = c.WithInputNoLoad("a.mp4", settings.Collection{})
	requireKind(t, err, fault.ErrValidation)
	_, err = c.WithInputNoLoad("a.mp4", settings.ForInput(), settings.ForInput())
	requireKind(t, err, fault.ErrValidation)
	require.Len(t, c.Resources(), 0)

	in, err := c.WithInputNoLoad("a.mp4", settings.ForInput(settings.Setting{Name: "ss", Value: "5"}))
	require.NoError(t, err)
	value, ok := in.Settings().Lookup("ss")
	require.True(t, ok)
	require.Equal(t, "5", value)
}

func TestWithInputProbesEagerly(t *testing.T) {
	prober := &fakeProber{results: map[string]ffprobe.Result{
		"a.mp4": {
			Streams: []ffprobe.Stream{{CodecType: "video"}, {CodecType: "audio"}},
			Format:  ffprobe.Format{Duration: "12.5"},
		},
	}}
	c := newOwned(t, command.WithProber(prober))

	in, err := c.WithInput(context.Background(), "a.mp4")
	require.NoError(t, err)
	require.True(t, in.Resource().HasMetadata())
	require.Equal(t, 12.5, in.Resource().Duration().Seconds())
	require.Equal(t, []string{"a.mp4"}, prober.calls)

	_, err = c.WithInputNoLoad("b.mp4")
	require.NoError(t, err)
	require.Len(t, prober.calls, 1)
}

func TestWithInputProbeFailureRegistersNothing(t *testing.T) {
	cause := errors.New("moov atom not found")
	c := newOwned(t, command.WithProber(&fakeProber{err: cause}))

	_, err := c.WithInput(context.Background(), "broken.mp4")
	requireKind(t, err, fault.ErrProbe)
	require.True(t, errors.Is(err, cause))
	require.Len(t, c.Resources(), 0)

	in, err := c.WithInputNoLoad("broken.mp4")
	require.NoError(t, err)
	require.NotNil(t, in)
}

func TestWithInputWithoutProberFails(t *testing.T) {
	c := newOwned(t)
	_, err := c.WithInput(context.Background(), "a.mp4")
	requireKind(t, err, fault.ErrProbe)
}

func TestWithInputsHaltsOnFirstFailure(t *testing.T) {
	c := newOwned(t)

	_, err := c.WithInputsNoLoad([]string{})
	requireKind(t, err, fault.ErrValidation)

	added, err := c.WithInputsNoLoad([]string{"a.mp4", "", "c.mp4"})
	requireKind(t, err, fault.ErrValidation)
	require.Len(t, added, 1)
	resources := c.Resources()
	require.Len(t, resources, 1)
	require.Equal(t, "a.mp4", resources[0].Resource().Locator())
}

func TestWithOutputValidation(t *testing.T) {
	c := newOwned(t)

	_, err := c.WithOutput("", settings.ForOutput())
	requireKind(t, err, fault.ErrValidation)
	require.Len(t, c.Outputs(), 0)

	for _, locator := range []string{"out.mp4", ""} {
		_, err = c.WithOutput(locator, settings.ForInput())
		requireKind(t, err, fault.ErrValidation)
	}
	require.Len(t, c.Outputs(), 0)

	out, err := c.WithOutput("out.mp4")
	require.NoError(t, err)
	require.Equal(t, settings.RoleOutput, out.Settings().Role())
	require.Len(t, out.Receipts(), 0)
	require.Len(t, c.Outputs(), 1)
}

func TestWithOutputsPreservesOrder(t *testing.T) {
	c := newOwned(t)
	outs, err := c.WithOutputs([]string{"a.mkv", "b.mkv"}, settings.ForOutput(settings.Setting{Name: "c", Value: "copy"}))
	require.NoError(t, err)
	require.Len(t, outs, 2)
	registered := c.Outputs()
	require.Equal(t, "a.mkv", registered[0].Resource().Locator())
	require.Equal(t, "b.mkv", registered[1].Resource().Locator())

	_, err = c.WithOutputs(nil)
	requireKind(t, err, fault.ErrValidation)
}

func TestRegistrySnapshotsAreCopies(t *testing.T) {
	c := newOwned(t)
	addInputs(t, c, "a.mp4")
	resources := c.Resources()
	resources[0] = nil
	require.NotNil(t, c.Resources()[0])
}
