package planfile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kostyll/HudlFfmpeg/internal/command"
	"github.com/kostyll/HudlFfmpeg/internal/fault"
	"github.com/kostyll/HudlFfmpeg/internal/filter"
	"github.com/kostyll/HudlFfmpeg/internal/settings"
)

// Build creates a command on p and registers the plan's inputs, chains and
// outputs in document order. Inputs marked probe use the pipeline's prober.
// Errors keep the graph's fault markers.
func Build(ctx context.Context, p *command.Pipeline, file File) (*command.Command, error) {
	if p == nil {
		return nil, fault.Wrap(fault.ErrPrecondition, "build plan", "pipeline is required", nil)
	}
	c := p.NewCommand()

	for i, in := range file.Inputs {
		coll := settings.ForInput(in.Settings...)
		var err error
		if in.Probe {
			_, err = c.WithInput(ctx, in.Locator, coll)
		} else {
			_, err = c.WithInputNoLoad(in.Locator, coll)
		}
		if err != nil {
			return c, fmt.Errorf("input %d: %w", i, err)
		}
	}

	chains := make(map[string]*command.Filterchain, len(file.Chains))
	for _, entry := range file.Chains {
		stage, err := selectStreams(c, entry.Streams, chains)
		if err != nil {
			return c, fmt.Errorf("chain %q: %w", entry.Name, err)
		}
		specs := make([]filter.Spec, 0, len(entry.Filters))
		for i, f := range entry.Filters {
			spec, err := f.spec()
			if err != nil {
				return c, fault.Wrap(fault.ErrConfiguration, "chain "+entry.Name, fmt.Sprintf("filter %d", i), err)
			}
			specs = append(specs, spec)
		}
		chain, err := stage.Filter(specs...)
		if err != nil {
			return c, fmt.Errorf("chain %q: %w", entry.Name, err)
		}
		chains[strings.TrimSpace(entry.Name)] = chain
	}

	for i, out := range file.Outputs {
		stage, err := selectStreams(c, out.Streams, chains)
		if err != nil {
			return c, fmt.Errorf("output %d: %w", i, err)
		}
		if _, err := stage.MapTo(out.Locator, settings.ForOutput(out.Settings...)); err != nil {
			return c, fmt.Errorf("output %d: %w", i, err)
		}
	}
	return c, nil
}

func selectStreams(c *command.Command, refs []string, chains map[string]*command.Filterchain) (*command.Stage, error) {
	receipts := make([]command.Receipt, 0, len(refs))
	for _, raw := range refs {
		ref, err := parseRef(raw)
		if err != nil {
			return nil, fault.Wrap(fault.ErrValidation, "select streams", "", err)
		}
		switch ref.kind {
		case refInputIndex:
			r, err := c.ResourceReceiptAt(ref.index)
			if err != nil {
				return nil, err
			}
			receipts = append(receipts, r)
		case refInputLast:
			r, ok, err := c.LastInputReceipt()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fault.Wrap(fault.ErrValidation, "select streams", "input:last used before any input", nil)
			}
			receipts = append(receipts, r)
		case refInputAll:
			stage, err := c.WithAllStreams()
			if err != nil {
				return nil, err
			}
			receipts = append(receipts, stage.Receipts()...)
		case refChain, refChainPad:
			chain, ok := chains[ref.name]
			if !ok {
				return nil, fault.Wrap(fault.ErrValidation, "select streams", "unknown chain "+ref.name, nil)
			}
			outputs := chain.Receipts()
			if ref.kind == refChain {
				receipts = append(receipts, outputs...)
				continue
			}
			if ref.index >= len(outputs) {
				return nil, fault.Wrap(fault.ErrRange, "select streams",
					fmt.Sprintf("chain %s has %d pads, requested %d", ref.name, len(outputs), ref.index), nil)
			}
			receipts = append(receipts, outputs[ref.index])
		}
	}
	return c.WithStreamList(receipts)
}

// deriveName builds a display name from the first output's file name.
func deriveName(file File) string {
	if len(file.Outputs) == 0 || strings.TrimSpace(file.Outputs[0].Locator) == "" {
		return "Untitled Plan"
	}
	base := filepath.Base(file.Outputs[0].Locator)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var cleaned strings.Builder
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	name := strings.TrimSpace(cleaned.String())
	if name == "" {
		return "Untitled Plan"
	}
	return cases.Title(language.Und).String(name)
}
