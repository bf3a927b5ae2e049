// Package filter describes the filter nodes that a command graph can chain
// together.
//
// A Spec only declares what the graph needs to track streams through it: a
// name, how many pads it consumes and produces, and a short expression used
// when rendering a plan. Specs do not validate ffmpeg option values.
package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// Spec is a single filter node.
type Spec interface {
	Name() string
	InputArity() int
	OutputArity() int
	Expression() string
}

// Check reports whether spec declares a usable shape.
func Check(spec Spec) error {
	if spec == nil {
		return fmt.Errorf("filter spec is nil")
	}
	if strings.TrimSpace(spec.Name()) == "" {
		return fmt.Errorf("filter spec has no name")
	}
	if spec.InputArity() < 0 {
		return fmt.Errorf("filter %s: negative input arity %d", spec.Name(), spec.InputArity())
	}
	if spec.OutputArity() < 1 {
		return fmt.Errorf("filter %s: output arity must be at least 1, got %d", spec.Name(), spec.OutputArity())
	}
	return nil
}

// Custom is a named filter with caller-declared arities.
type Custom struct {
	FilterName string
	Inputs     int
	Outputs    int
	Options    []Option
}

// Option is a key/value pair rendered into a filter expression.
type Option struct {
	Key   string
	Value string
}

func (c Custom) Name() string       { return strings.TrimSpace(c.FilterName) }
func (c Custom) InputArity() int    { return c.Inputs }
func (c Custom) OutputArity() int   { return c.Outputs }
func (c Custom) Expression() string { return expression(c.Name(), c.Options...) }

func expression(name string, options ...Option) string {
	if len(options) == 0 {
		return name
	}
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		key := strings.TrimSpace(opt.Key)
		if key == "" {
			parts = append(parts, opt.Value)
			continue
		}
		parts = append(parts, key+"="+opt.Value)
	}
	return name + "=" + strings.Join(parts, ":")
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
