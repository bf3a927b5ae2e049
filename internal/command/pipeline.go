package command

import (
	"log/slog"
	"sync"

	"github.com/kostyll/HudlFfmpeg/internal/fault"
	"github.com/kostyll/HudlFfmpeg/internal/logging"
	"github.com/kostyll/HudlFfmpeg/internal/resource"
)

// Pipeline is the owning context for a set of commands. Its command registry
// is the authority for membership checks.
type Pipeline struct {
	base   *slog.Logger
	logger *slog.Logger
	ids    IDGenerator
	prober resource.Prober

	mu          sync.RWMutex
	commandList map[string]*Command
	order       []string
}

// NewPipeline creates an empty owner.
func NewPipeline(opts ...Option) *Pipeline {
	o := buildOptions(opts)
	p := &Pipeline{
		base:        o.logger,
		ids:         o.ids,
		prober:      o.prober,
		commandList: make(map[string]*Command),
	}
	if p.base == nil {
		p.base = logging.NewNop()
	}
	p.logger = logging.NewComponentLogger(p.base, "pipeline")
	if p.ids == nil {
		p.ids = UUIDGenerator{}
	}
	return p
}

// NewCommand creates a command owned by and registered with p.
func (p *Pipeline) NewCommand() *Command {
	c := &Command{id: p.ids.New(), owner: p}
	p.register(c)
	return c
}

// Adopt takes ownership of a detached command. Adopting a command already
// registered with p is a no-op.
func (p *Pipeline) Adopt(c *Command) error {
	if c == nil {
		return fault.Wrap(fault.ErrValidation, "adopt command", "command is nil", nil)
	}
	if c.owner != nil && c.owner != p {
		return fault.Wrap(fault.ErrValidation, "adopt command", "command "+c.id+" already has an owner", nil)
	}
	if c.owner == p && p.Contains(c.id) {
		return nil
	}
	if p.Contains(c.id) {
		return fault.Wrap(fault.ErrValidation, "adopt command", "command id "+c.id+" already registered", nil)
	}
	c.owner = p
	p.register(c)
	return nil
}

// Remove drops a command from the registry. The command keeps its owner
// reference, so every later graph operation on it fails membership.
func (p *Pipeline) Remove(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.commandList[id]; !ok {
		return false
	}
	delete(p.commandList, id)
	for i, existing := range p.order {
		if existing == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	p.logger.Debug("command removed", logging.CommandID(id))
	return true
}

// Contains reports whether a command with id is registered.
func (p *Pipeline) Contains(id string) bool {
	if id == "" {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.commandList[id]
	return ok
}

// Command looks up a registered command by id.
func (p *Pipeline) Command(id string) (*Command, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.commandList[id]
	return c, ok
}

// Commands returns registered commands in creation order.
func (p *Pipeline) Commands() []*Command {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*Command, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.commandList[id])
	}
	return out
}

// Len returns the number of registered commands.
func (p *Pipeline) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.order)
}

func (p *Pipeline) register(c *Command) {
	p.mu.Lock()
	p.commandList[c.id] = c
	p.order = append(p.order, c.id)
	p.mu.Unlock()
	p.logger.Debug("command registered",
		logging.CommandID(c.id),
		logging.EventType("command_registered"),
	)
}
