package planfile

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kostyll/HudlFfmpeg/internal/filter"
)

func (e FilterEntry) spec() (filter.Spec, error) {
	switch strings.ToLower(strings.TrimSpace(e.Kind)) {
	case "scale":
		return filter.Scale{Width: e.Width, Height: e.Height}, nil
	case "overlay":
		return filter.Overlay{X: e.X, Y: e.Y}, nil
	case "concat":
		segments := e.Segments
		if segments == 0 {
			segments = 2
		}
		video := e.Video
		if video == 0 && e.Audio == 0 {
			video = 1
		}
		return filter.Concat{Segments: segments, Video: video, Audio: e.Audio}, nil
	case "split":
		outputs := e.Outputs
		if outputs == 0 {
			outputs = 2
		}
		return filter.Split{Outputs: outputs}, nil
	case "trim":
		return filter.Trim{Start: seconds(e.Start), End: seconds(e.End)}, nil
	case "fps":
		return filter.Fps{Rate: e.Rate}, nil
	case "colorchannelmixer", "mixer":
		scale, err := e.scaleRgb()
		if err != nil {
			return nil, err
		}
		return filter.ColorChannelMixer{Scale: scale}, nil
	case "custom":
		inputs, outputs := e.Inputs, e.Outputs
		if inputs == 0 && outputs == 0 {
			inputs, outputs = 1, 1
		}
		return filter.Custom{FilterName: e.Name, Inputs: inputs, Outputs: outputs, Options: sortedOptions(e.Options)}, nil
	case "":
		return nil, fmt.Errorf("filter kind is required")
	default:
		return nil, fmt.Errorf("unknown filter kind %q", e.Kind)
	}
}

func (e FilterEntry) scaleRgb() (filter.ScaleRgb, error) {
	switch strings.ToLower(e.Preset) {
	case "grayscale", "greyscale":
		return filter.Grayscale(), nil
	case "", "identity":
	default:
		return filter.ScaleRgb{}, fmt.Errorf("unknown mixer preset %q", e.Preset)
	}
	scale := filter.IdentityRgb()
	for _, channel := range []struct {
		name   string
		values []float64
		target *filter.ChannelScale
	}{
		{"red", e.Red, &scale.Red},
		{"green", e.Green, &scale.Green},
		{"blue", e.Blue, &scale.Blue},
	} {
		if channel.values == nil {
			continue
		}
		if len(channel.values) != 3 {
			return filter.ScaleRgb{}, fmt.Errorf("mixer %s ratio needs 3 values, got %d", channel.name, len(channel.values))
		}
		*channel.target = filter.ChannelScale{Red: channel.values[0], Green: channel.values[1], Blue: channel.values[2]}
	}
	return scale, nil
}

func seconds(value float64) time.Duration {
	return time.Duration(value * float64(time.Second))
}

func sortedOptions(options map[string]string) []filter.Option {
	if len(options) == 0 {
		return nil
	}
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]filter.Option, 0, len(keys))
	for _, key := range keys {
		out = append(out, filter.Option{Key: key, Value: options[key]})
	}
	return out
}
