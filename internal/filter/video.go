package filter

import (
	"strconv"
	"time"
)

// Scale resizes a single video stream. Zero dimensions keep the input size;
// -1 preserves aspect ratio.
type Scale struct {
	Width  int
	Height int
}

func (Scale) Name() string     { return "scale" }
func (Scale) InputArity() int  { return 1 }
func (Scale) OutputArity() int { return 1 }

func (s Scale) Expression() string {
	return expression("scale",
		Option{Key: "w", Value: dimension(s.Width, "iw")},
		Option{Key: "h", Value: dimension(s.Height, "ih")},
	)
}

func dimension(value int, fallback string) string {
	if value == 0 {
		return fallback
	}
	return strconv.Itoa(value)
}

// Overlay places the second input on top of the first.
type Overlay struct {
	X string
	Y string
}

func (Overlay) Name() string     { return "overlay" }
func (Overlay) InputArity() int  { return 2 }
func (Overlay) OutputArity() int { return 1 }

func (o Overlay) Expression() string {
	x, y := o.X, o.Y
	if x == "" {
		x = "0"
	}
	if y == "" {
		y = "0"
	}
	return expression("overlay", Option{Key: "x", Value: x}, Option{Key: "y", Value: y})
}

// Concat joins Segments groups of streams end to end. Each segment carries
// Video video streams followed by Audio audio streams.
type Concat struct {
	Segments int
	Video    int
	Audio    int
}

func (Concat) Name() string { return "concat" }

func (c Concat) InputArity() int { return c.Segments * (c.Video + c.Audio) }

func (c Concat) OutputArity() int { return c.Video + c.Audio }

func (c Concat) Expression() string {
	return expression("concat",
		Option{Key: "n", Value: strconv.Itoa(c.Segments)},
		Option{Key: "v", Value: strconv.Itoa(c.Video)},
		Option{Key: "a", Value: strconv.Itoa(c.Audio)},
	)
}

// Split duplicates one stream into Outputs copies.
type Split struct {
	Outputs int
}

func (Split) Name() string         { return "split" }
func (Split) InputArity() int      { return 1 }
func (s Split) OutputArity() int   { return s.Outputs }
func (s Split) Expression() string { return expression("split", Option{Value: strconv.Itoa(s.Outputs)}) }

// Trim keeps the [Start, End) window of a stream. A zero End keeps the rest.
type Trim struct {
	Start time.Duration
	End   time.Duration
}

func (Trim) Name() string     { return "trim" }
func (Trim) InputArity() int  { return 1 }
func (Trim) OutputArity() int { return 1 }

func (t Trim) Expression() string {
	opts := []Option{{Key: "start", Value: formatFloat(t.Start.Seconds())}}
	if t.End > 0 {
		opts = append(opts, Option{Key: "end", Value: formatFloat(t.End.Seconds())})
	}
	return expression("trim", opts...)
}

// Fps converts a video stream to a constant frame rate such as "30" or "30000/1001".
type Fps struct {
	Rate string
}

func (Fps) Name() string     { return "fps" }
func (Fps) InputArity() int  { return 1 }
func (Fps) OutputArity() int { return 1 }

func (f Fps) Expression() string {
	rate := f.Rate
	if rate == "" {
		rate = "25"
	}
	return expression("fps", Option{Key: "fps", Value: rate})
}
