package command

import (
	"log/slog"
	"slices"

	"github.com/kostyll/HudlFfmpeg/internal/fault"
	"github.com/kostyll/HudlFfmpeg/internal/logging"
	"github.com/kostyll/HudlFfmpeg/internal/resource"
)

// Command holds the ordered inputs, filterchains and outputs of one
// invocation. A Command without an owner is inert: every registration and
// selection fails with fault.ErrPrecondition.
type Command struct {
	id     string
	owner  *Pipeline
	parent *Command
	opts   options

	resources    []*CommandResource
	outputs      []*CommandOutput
	filterchains []*Filterchain
	produced     map[string]struct{}
}

// New creates a detached command. Use Pipeline.Adopt to give it an owner.
func New(opts ...Option) *Command {
	o := buildOptions(opts)
	ids := o.ids
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Command{id: ids.New(), opts: o}
}

// NewSubCommand creates a command registered with the same owner and linked
// to c as its parent.
func (c *Command) NewSubCommand() (*Command, error) {
	if err := c.MembershipCheck(); err != nil {
		return nil, err
	}
	sub := &Command{id: c.idGenerator().New(), owner: c.owner, parent: c, opts: c.opts}
	c.owner.register(sub)
	c.log().Debug("sub-command created", logging.String("sub_command_id", sub.id))
	return sub, nil
}

// ID returns the command identifier.
func (c *Command) ID() string { return c.id }

// Owner returns the owning pipeline, or nil for a detached command.
func (c *Command) Owner() *Pipeline { return c.owner }

// Parent returns the command this one was created from, if any.
func (c *Command) Parent() *Command { return c.parent }

// Resources returns the registered inputs in registration order.
func (c *Command) Resources() []*CommandResource { return slices.Clone(c.resources) }

// Outputs returns the registered outputs in registration order.
func (c *Command) Outputs() []*CommandOutput { return slices.Clone(c.outputs) }

// Filterchains returns the registered filterchains in registration order.
func (c *Command) Filterchains() []*Filterchain { return slices.Clone(c.filterchains) }

// MembershipCheck confirms that c has an owner and that the owner's registry
// lists c by id.
func (c *Command) MembershipCheck() error {
	if c.owner == nil {
		return fault.Wrap(fault.ErrPrecondition, "membership check", "command must have an owner before streams can be built", nil)
	}
	if !c.owner.Contains(c.id) {
		return fault.Wrap(fault.ErrValidation, "membership check", "command "+c.id+" is not registered with its owner", nil)
	}
	return nil
}

// owns reports whether receipt is a selectable stream of c.
func (c *Command) owns(receipt Receipt) bool {
	if receipt.IsZero() {
		return false
	}
	_, ok := c.produced[receipt.id]
	return ok
}

func (c *Command) allocate(kind ProducerKind, source string, pad int) Receipt {
	return Receipt{id: c.idGenerator().New(), producer: kind, source: source, pad: pad}
}

// track makes receipts selectable on c.
func (c *Command) track(receipts ...Receipt) {
	if c.produced == nil {
		c.produced = make(map[string]struct{}, len(receipts))
	}
	for _, r := range receipts {
		c.produced[r.id] = struct{}{}
	}
}

func (c *Command) idGenerator() IDGenerator {
	if c.opts.ids != nil {
		return c.opts.ids
	}
	if c.owner != nil {
		return c.owner.ids
	}
	return UUIDGenerator{}
}

func (c *Command) prober() resource.Prober {
	if c.opts.prober != nil {
		return c.opts.prober
	}
	if c.owner != nil {
		return c.owner.prober
	}
	return nil
}

func (c *Command) log() *slog.Logger {
	logger := c.opts.logger
	if logger == nil && c.owner != nil {
		logger = c.owner.base
	}
	return logging.NewComponentLogger(logger, "command").With(logging.CommandID(c.id))
}
