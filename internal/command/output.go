package command

import (
	"github.com/kostyll/HudlFfmpeg/internal/fault"
	"github.com/kostyll/HudlFfmpeg/internal/settings"
)

// MapTo writes the input's own stream straight to a destination.
func (r *CommandResource) MapTo(locator string, collection ...settings.Collection) (*CommandOutput, error) {
	if r == nil || r.command == nil {
		return nil, fault.Wrap(fault.ErrValidation, "map to", "resource cannot be nil", nil)
	}
	stage, err := r.command.WithStreamsFrom(r)
	if err != nil {
		return nil, err
	}
	return stage.MapTo(locator, collection...)
}

// MapTo writes the chain's final streams to a destination.
func (f *Filterchain) MapTo(locator string, collection ...settings.Collection) (*CommandOutput, error) {
	if f == nil || f.command == nil {
		return nil, fault.Wrap(fault.ErrValidation, "map to", "filterchain cannot be nil", nil)
	}
	stage, err := f.command.WithStreamsFromFilterchain(f)
	if err != nil {
		return nil, err
	}
	return stage.MapTo(locator, collection...)
}
