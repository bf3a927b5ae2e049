package command

import (
	"fmt"

	"github.com/kostyll/HudlFfmpeg/internal/fault"
	"github.com/kostyll/HudlFfmpeg/internal/filter"
	"github.com/kostyll/HudlFfmpeg/internal/logging"
)

// Edge records one filter application: the receipts it consumed and the
// receipts allocated for its output pads.
type Edge struct {
	Inputs  []Receipt
	Filter  filter.Spec
	Outputs []Receipt
}

// Filterchain is an ordered run of filters. Each filter consumes the previous
// filter's outputs; the first consumes the stage it was applied to.
type Filterchain struct {
	id      string
	command *Command
	inputs  []Receipt
	edges   []Edge
}

// ID returns the filterchain identifier.
func (f *Filterchain) ID() string { return f.id }

// Command returns the command the chain is registered on.
func (f *Filterchain) Command() *Command { return f.command }

// Inputs returns the receipts the chain consumes.
func (f *Filterchain) Inputs() []Receipt { return append([]Receipt(nil), f.inputs...) }

// Specs returns the filters in application order.
func (f *Filterchain) Specs() []filter.Spec {
	specs := make([]filter.Spec, 0, len(f.edges))
	for _, edge := range f.edges {
		specs = append(specs, edge.Filter)
	}
	return specs
}

// Edges returns a copy of the recorded edges.
func (f *Filterchain) Edges() []Edge {
	edges := make([]Edge, 0, len(f.edges))
	for _, edge := range f.edges {
		edges = append(edges, Edge{
			Inputs:  append([]Receipt(nil), edge.Inputs...),
			Filter:  edge.Filter,
			Outputs: append([]Receipt(nil), edge.Outputs...),
		})
	}
	return edges
}

// Receipts returns the outputs of the final filter.
func (f *Filterchain) Receipts() []Receipt {
	if len(f.edges) == 0 {
		return []Receipt{}
	}
	return append([]Receipt(nil), f.edges[len(f.edges)-1].Outputs...)
}

// ApplyFilters validates that specs line up with stage and with each other,
// then allocates one receipt per output pad and registers the chain on c.
// On an arity mismatch nothing is allocated and fault.ErrConfiguration is
// returned.
func (c *Command) ApplyFilters(stage *Stage, specs ...filter.Spec) (*Filterchain, error) {
	const op = "apply filters"
	if err := c.MembershipCheck(); err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, fault.Wrap(fault.ErrValidation, op, "stage cannot be nil", nil)
	}
	if stage.command != c {
		return nil, fault.Wrap(fault.ErrValidation, op, "stage was selected from another command", nil)
	}
	if err := checkArity(stage.Len(), specs); err != nil {
		return nil, fault.Wrap(fault.ErrConfiguration, op, "", err)
	}
	for _, r := range stage.receipts {
		if !c.owns(r) {
			return nil, fault.Wrap(fault.ErrValidation, op, "receipt "+r.String()+" does not belong to command "+c.id, nil)
		}
	}

	chain := &Filterchain{
		id:      c.idGenerator().New(),
		command: c,
		inputs:  append([]Receipt(nil), stage.receipts...),
		edges:   make([]Edge, 0, len(specs)),
	}
	current := chain.inputs
	for _, spec := range specs {
		outputs := make([]Receipt, spec.OutputArity())
		for pad := range outputs {
			outputs[pad] = c.allocate(ProducedByFilterchain, chain.id, pad)
		}
		chain.edges = append(chain.edges, Edge{Inputs: current, Filter: spec, Outputs: outputs})
		current = outputs
	}
	c.track(current...)
	c.filterchains = append(c.filterchains, chain)

	c.log().Debug("filterchain registered",
		logging.EventType("filterchain_registered"),
		logging.String("filterchain_id", chain.id),
		logging.Int("filters", len(specs)),
		logging.Int("inputs", len(chain.inputs)),
		logging.Int("outputs", len(current)),
	)
	return chain, nil
}

func checkArity(available int, specs []filter.Spec) error {
	if len(specs) == 0 {
		return fmt.Errorf("at least one filter is required")
	}
	for i, spec := range specs {
		if err := filter.Check(spec); err != nil {
			return fmt.Errorf("filter %d: %w", i, err)
		}
		if spec.InputArity() != available {
			return fmt.Errorf("filter %d (%s) expects %d inputs, got %d", i, spec.Name(), spec.InputArity(), available)
		}
		available = spec.OutputArity()
	}
	return nil
}
