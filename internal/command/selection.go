package command

import (
	"fmt"

	"github.com/kostyll/HudlFfmpeg/internal/fault"
	"github.com/kostyll/HudlFfmpeg/internal/logging"
)

// ResourceReceiptAt returns the receipt of the input registered at index.
func (c *Command) ResourceReceiptAt(index int) (Receipt, error) {
	if err := c.MembershipCheck(); err != nil {
		return Receipt{}, err
	}
	if index < 0 || index >= len(c.resources) {
		return Receipt{}, fault.Wrap(fault.ErrRange, "resource receipt at",
			fmt.Sprintf("index %d outside [0, %d)", index, len(c.resources)), nil)
	}
	return c.resources[index].receipt, nil
}

// LastInputReceipt returns the receipt of the most recently registered input.
// ok is false, with a nil error, when no inputs are registered.
func (c *Command) LastInputReceipt() (receipt Receipt, ok bool, err error) {
	if err := c.MembershipCheck(); err != nil {
		return Receipt{}, false, err
	}
	if len(c.resources) == 0 {
		return Receipt{}, false, nil
	}
	return c.resources[len(c.resources)-1].receipt, true, nil
}

// WithStream selects a single receipt.
func (c *Command) WithStream(receipt Receipt) (*Stage, error) {
	return c.selectStreams("with stream", []Receipt{receipt})
}

// WithStreams selects receipts in the given order. Calling it with no
// arguments yields an empty stage.
func (c *Command) WithStreams(receipts ...Receipt) (*Stage, error) {
	if receipts == nil {
		receipts = []Receipt{}
	}
	return c.selectStreams("with streams", receipts)
}

// WithStreamList selects receipts from a list. A nil list is rejected while an
// empty list yields an empty stage.
func (c *Command) WithStreamList(receipts []Receipt) (*Stage, error) {
	return c.selectStreams("with stream list", receipts)
}

// WithStreamAt selects the receipt of the input registered at index.
func (c *Command) WithStreamAt(index int) (*Stage, error) {
	receipt, err := c.ResourceReceiptAt(index)
	if err != nil {
		return nil, err
	}
	return c.selectStreams("with stream at", []Receipt{receipt})
}

// WithStreamsFrom selects the receipt produced by an input of c.
func (c *Command) WithStreamsFrom(input *CommandResource) (*Stage, error) {
	if err := c.MembershipCheck(); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, fault.Wrap(fault.ErrValidation, "with streams from", "resource cannot be nil", nil)
	}
	if input.command != c {
		return nil, fault.Wrap(fault.ErrValidation, "with streams from", "resource "+input.id+" belongs to another command", nil)
	}
	return c.newStage([]Receipt{input.receipt}), nil
}

// WithStreamsFromFilterchain selects the final receipts of a filterchain of c.
func (c *Command) WithStreamsFromFilterchain(chain *Filterchain) (*Stage, error) {
	if err := c.MembershipCheck(); err != nil {
		return nil, err
	}
	if chain == nil {
		return nil, fault.Wrap(fault.ErrValidation, "with streams from filterchain", "filterchain cannot be nil", nil)
	}
	if chain.command != c {
		return nil, fault.Wrap(fault.ErrValidation, "with streams from filterchain", "filterchain "+chain.id+" belongs to another command", nil)
	}
	return c.newStage(chain.Receipts()), nil
}

// WithAllStreams selects the receipt of every registered input in
// registration order. The stage is a snapshot; later inputs are not added.
func (c *Command) WithAllStreams() (*Stage, error) {
	if err := c.MembershipCheck(); err != nil {
		return nil, err
	}
	receipts := make([]Receipt, 0, len(c.resources))
	for _, entry := range c.resources {
		receipts = append(receipts, entry.receipt)
	}
	return c.newStage(receipts), nil
}

func (c *Command) selectStreams(op string, receipts []Receipt) (*Stage, error) {
	if err := c.MembershipCheck(); err != nil {
		return nil, err
	}
	if receipts == nil {
		return nil, fault.Wrap(fault.ErrValidation, op, "receipt list cannot be nil", nil)
	}
	for _, r := range receipts {
		if !c.owns(r) {
			return nil, fault.Wrap(fault.ErrValidation, op, "receipt "+r.String()+" does not belong to command "+c.id, nil)
		}
	}
	return c.newStage(receipts), nil
}

func (c *Command) newStage(receipts []Receipt) *Stage {
	stage := &Stage{command: c, receipts: append(make([]Receipt, 0, len(receipts)), receipts...)}
	c.log().Debug("streams selected", logging.Int("streams", len(stage.receipts)))
	return stage
}
