package command

import (
	"log/slog"

	"github.com/kostyll/HudlFfmpeg/internal/resource"
)

// Option customises a Pipeline or a detached Command.
type Option func(*options)

type options struct {
	logger *slog.Logger
	ids    IDGenerator
	prober resource.Prober
}

// WithLogger routes graph debug logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithIDGenerator overrides the default UUID generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(o *options) { o.ids = ids }
}

// WithProber sets the metadata prober used by WithInput.
func WithProber(prober resource.Prober) Option {
	return func(o *options) { o.prober = prober }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
