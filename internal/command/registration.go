package command

import (
	"context"
	"strings"
	"time"

	"github.com/kostyll/HudlFfmpeg/internal/fault"
	"github.com/kostyll/HudlFfmpeg/internal/logging"
	"github.com/kostyll/HudlFfmpeg/internal/resource"
	"github.com/kostyll/HudlFfmpeg/internal/settings"
)

// CommandResource binds an input resource and its input settings to a
// command. It exposes one receipt for downstream selection.
type CommandResource struct {
	id       string
	command  *Command
	resource resource.Resource
	settings settings.Collection
	receipt  Receipt
}

func (r *CommandResource) ID() string                    { return r.id }
func (r *CommandResource) Command() *Command             { return r.command }
func (r *CommandResource) Resource() resource.Resource   { return r.resource }
func (r *CommandResource) Settings() settings.Collection { return r.settings }
func (r *CommandResource) Receipt() Receipt              { return r.receipt }

// CommandOutput binds a destination resource and its output settings to a
// command, terminating the receipts mapped to it.
type CommandOutput struct {
	id       string
	command  *Command
	resource resource.Resource
	settings settings.Collection
	receipts []Receipt
}

func (o *CommandOutput) ID() string                    { return o.id }
func (o *CommandOutput) Command() *Command             { return o.command }
func (o *CommandOutput) Resource() resource.Resource   { return o.resource }
func (o *CommandOutput) Settings() settings.Collection { return o.settings }

// Receipts returns the streams written to this destination.
func (o *CommandOutput) Receipts() []Receipt {
	return append([]Receipt(nil), o.receipts...)
}

// WithInput registers locator as an input and probes its metadata through the
// configured prober. A probe failure is returned and nothing is registered.
// At most one settings collection may be supplied; default input settings are
// used when none is.
func (c *Command) WithInput(ctx context.Context, locator string, collection ...settings.Collection) (*CommandResource, error) {
	return c.addInput(ctx, "with input", locator, collection, true)
}

// WithInputNoLoad registers locator as an input without probing it.
func (c *Command) WithInputNoLoad(locator string, collection ...settings.Collection) (*CommandResource, error) {
	return c.addInput(context.Background(), "with input no load", locator, collection, false)
}

// WithInputs registers each locator in order with eager probing. It halts on
// the first failure; inputs registered before it remain on the command and
// are returned alongside the error.
func (c *Command) WithInputs(ctx context.Context, locators []string, collection ...settings.Collection) ([]*CommandResource, error) {
	return c.addInputs(ctx, "with inputs", locators, collection, true)
}

// WithInputsNoLoad is WithInputs without metadata probing.
func (c *Command) WithInputsNoLoad(locators []string, collection ...settings.Collection) ([]*CommandResource, error) {
	return c.addInputs(context.Background(), "with inputs no load", locators, collection, false)
}

// WithOutput registers a destination with no streams mapped to it yet.
func (c *Command) WithOutput(locator string, collection ...settings.Collection) (*CommandOutput, error) {
	return c.addOutput("with output", locator, collection, nil)
}

// WithOutputs registers each destination in order, halting on the first
// failure.
func (c *Command) WithOutputs(locators []string, collection ...settings.Collection) ([]*CommandOutput, error) {
	return c.addOutputs("with outputs", locators, collection, nil)
}

func (c *Command) addInput(ctx context.Context, op, locator string, collection []settings.Collection, load bool) (*CommandResource, error) {
	if c.owner == nil {
		return nil, fault.Wrap(fault.ErrPrecondition, op, "command must have an owner before inputs can be added", nil)
	}
	coll, err := resolveSettings(op, collection, settings.RoleInput)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(locator) == "" {
		return nil, fault.Wrap(fault.ErrValidation, op, "input locator cannot be empty", nil)
	}
	if err := c.MembershipCheck(); err != nil {
		return nil, err
	}
	res, err := resource.From(locator)
	if err != nil {
		return nil, err
	}
	if load {
		started := time.Now()
		res, err = res.LoadMetadata(ctx, c.prober())
		if err != nil {
			logger := logging.WithContext(ctx, c.log())
			logging.WarnWithContext(logger, "input probe failed", "input_probe_failed",
				logging.Locator(res.Locator()),
				logging.Error(err),
				logging.ErrorHint("check the locator and the configured ffprobe binary"),
			)
			return nil, err
		}
		c.log().Debug("input probed",
			logging.Locator(res.Locator()),
			logging.Duration("elapsed", time.Since(started)),
			logging.Duration("media_duration", res.Duration()),
		)
	}

	entry := &CommandResource{
		id:       c.idGenerator().New(),
		command:  c,
		resource: res,
		settings: coll,
	}
	entry.receipt = c.allocate(ProducedByResource, entry.id, 0)
	c.track(entry.receipt)
	c.resources = append(c.resources, entry)

	c.log().Debug("input registered",
		logging.EventType("input_registered"),
		logging.Locator(res.Locator()),
		logging.Receipt(entry.receipt.id),
		logging.Int("index", len(c.resources)-1),
		logging.Bool("probed", res.HasMetadata()),
	)
	return entry, nil
}

func (c *Command) addInputs(ctx context.Context, op string, locators []string, collection []settings.Collection, load bool) ([]*CommandResource, error) {
	if c.owner == nil {
		return nil, fault.Wrap(fault.ErrPrecondition, op, "command must have an owner before inputs can be added", nil)
	}
	if len(locators) == 0 {
		return nil, fault.Wrap(fault.ErrValidation, op, "at least one input locator is required", nil)
	}
	added := make([]*CommandResource, 0, len(locators))
	for _, locator := range locators {
		entry, err := c.addInput(ctx, op, locator, collection, load)
		if err != nil {
			return added, err
		}
		added = append(added, entry)
	}
	return added, nil
}

func (c *Command) addOutput(op, locator string, collection []settings.Collection, receipts []Receipt) (*CommandOutput, error) {
	if c.owner == nil {
		return nil, fault.Wrap(fault.ErrPrecondition, op, "command must have an owner before outputs can be added", nil)
	}
	coll, err := resolveSettings(op, collection, settings.RoleOutput)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(locator) == "" {
		return nil, fault.Wrap(fault.ErrValidation, op, "output locator cannot be empty", nil)
	}
	if err := c.MembershipCheck(); err != nil {
		return nil, err
	}
	for _, r := range receipts {
		if !c.owns(r) {
			return nil, fault.Wrap(fault.ErrValidation, op, "receipt "+r.String()+" does not belong to command "+c.id, nil)
		}
	}
	res, err := resource.From(locator)
	if err != nil {
		return nil, err
	}

	out := &CommandOutput{
		id:       c.idGenerator().New(),
		command:  c,
		resource: res,
		settings: coll,
		receipts: append([]Receipt(nil), receipts...),
	}
	c.outputs = append(c.outputs, out)

	c.log().Debug("output registered",
		logging.EventType("output_registered"),
		logging.Locator(res.Locator()),
		logging.Int("streams", len(out.receipts)),
	)
	return out, nil
}

func (c *Command) addOutputs(op string, locators []string, collection []settings.Collection, receipts []Receipt) ([]*CommandOutput, error) {
	if c.owner == nil {
		return nil, fault.Wrap(fault.ErrPrecondition, op, "command must have an owner before outputs can be added", nil)
	}
	if len(locators) == 0 {
		return nil, fault.Wrap(fault.ErrValidation, op, "at least one output locator is required", nil)
	}
	added := make([]*CommandOutput, 0, len(locators))
	for _, locator := range locators {
		out, err := c.addOutput(op, locator, collection, receipts)
		if err != nil {
			return added, err
		}
		added = append(added, out)
	}
	return added, nil
}

// resolveSettings applies the default collection for role and rejects a
// collection declared for the other side of the command.
func resolveSettings(op string, given []settings.Collection, role settings.Role) (settings.Collection, error) {
	switch {
	case len(given) == 0:
		return settings.For(role), nil
	case len(given) > 1:
		return settings.Collection{}, fault.Wrap(fault.ErrValidation, op, "at most one settings collection may be supplied", nil)
	}
	coll := given[0]
	if coll.IsZero() {
		return settings.Collection{}, fault.Wrap(fault.ErrValidation, op, "settings collection has no role", nil)
	}
	if coll.Role() != role {
		return settings.Collection{}, fault.Wrap(fault.ErrValidation, op, "settings collection must have role "+role.String()+", got "+coll.Role().String(), nil)
	}
	return coll, nil
}
