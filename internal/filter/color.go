package filter

// ChannelScale holds the contribution of the red, green and blue input
// channels to one output channel.
type ChannelScale struct {
	Red   float64
	Green float64
	Blue  float64
}

// ScaleRgb is an intensity ratio for each output colour channel.
type ScaleRgb struct {
	Red   ChannelScale
	Green ChannelScale
	Blue  ChannelScale
}

// IdentityRgb returns a ratio that leaves colours unchanged.
func IdentityRgb() ScaleRgb {
	return ScaleRgb{
		Red:   ChannelScale{Red: 1},
		Green: ChannelScale{Green: 1},
		Blue:  ChannelScale{Blue: 1},
	}
}

// Grayscale returns luma-weighted ratios for all three channels.
func Grayscale() ScaleRgb {
	luma := ChannelScale{Red: 0.3, Green: 0.4, Blue: 0.3}
	return ScaleRgb{Red: luma, Green: luma, Blue: luma}
}

// ColorChannelMixer remixes colour channels of a single video stream.
type ColorChannelMixer struct {
	Scale ScaleRgb
}

func (ColorChannelMixer) Name() string     { return "colorchannelmixer" }
func (ColorChannelMixer) InputArity() int  { return 1 }
func (ColorChannelMixer) OutputArity() int { return 1 }

func (c ColorChannelMixer) Expression() string {
	s := c.Scale
	return expression("colorchannelmixer",
		Option{Key: "rr", Value: formatFloat(s.Red.Red)},
		Option{Key: "rg", Value: formatFloat(s.Red.Green)},
		Option{Key: "rb", Value: formatFloat(s.Red.Blue)},
		Option{Key: "gr", Value: formatFloat(s.Green.Red)},
		Option{Key: "gg", Value: formatFloat(s.Green.Green)},
		Option{Key: "gb", Value: formatFloat(s.Green.Blue)},
		Option{Key: "br", Value: formatFloat(s.Blue.Red)},
		Option{Key: "bg", Value: formatFloat(s.Blue.Green)},
		Option{Key: "bb", Value: formatFloat(s.Blue.Blue)},
	)
}
