package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kostyll/HudlFfmpeg/internal/command"
	"github.com/kostyll/HudlFfmpeg/internal/media/ffprobe"
)

type fakeProber struct {
	results map[string]ffprobe.Result
	err     error
	calls   []string
}

func (f *fakeProber) Probe(_ context.Context, locator string) (ffprobe.Result, error) {
	f.calls = append(f.calls, locator)
	if f.err != nil {
		return ffprobe.Result{}, f.err
	}
	return f.results[locator], nil
}

func newPipeline(opts ...command.Option) *command.Pipeline {
	opts = append([]command.Option{command.WithIDGenerator(command.NewSequentialGenerator("id-"))}, opts...)
	return command.NewPipeline(opts...)
}

func newOwned(t *testing.T, opts ...command.Option) *command.Command {
	t.Helper()
	return newPipeline(opts...).NewCommand()
}

func addInputs(t *testing.T, c *command.Command, locators ...string) []*command.CommandResource {
	t.Helper()
	inputs, err := c.WithInputsNoLoad(locators)
	require.NoError(t, err)
	require.Len(t, inputs, len(locators))
	return inputs
}

func requireKind(t *testing.T, err, marker error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, marker), "expected %v, got %v", marker, err)
}
