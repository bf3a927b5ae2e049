package command

import (
	"github.com/kostyll/HudlFfmpeg/internal/settings"
)

// Plan is a read-only, serialisable view of a command graph. Receipts are
// referenced by id.
type Plan struct {
	CommandID    string       `json:"command_id"`
	ParentID     string       `json:"parent_id,omitempty"`
	Inputs       []PlanInput  `json:"inputs"`
	Filterchains []PlanChain  `json:"filterchains"`
	Outputs      []PlanOutput `json:"outputs"`
	Children     []string     `json:"children,omitempty"`
}

// PlanInput describes one registered input.
type PlanInput struct {
	ID              string             `json:"id"`
	Locator         string             `json:"locator"`
	Receipt         string             `json:"receipt"`
	Settings        []settings.Setting `json:"settings,omitempty"`
	Probed          bool               `json:"probed"`
	DurationSeconds float64            `json:"duration_seconds,omitempty"`
	VideoStreams    int                `json:"video_streams,omitempty"`
	AudioStreams    int                `json:"audio_streams,omitempty"`
}

// PlanChain describes one filterchain.
type PlanChain struct {
	ID      string     `json:"id"`
	Inputs  []string   `json:"inputs"`
	Edges   []PlanEdge `json:"edges"`
	Outputs []string   `json:"outputs"`
}

// PlanEdge describes one filter application inside a chain.
type PlanEdge struct {
	Filter     string   `json:"filter"`
	Expression string   `json:"expression"`
	Inputs     []string `json:"inputs"`
	Outputs    []string `json:"outputs"`
}

// PlanOutput describes one registered destination.
type PlanOutput struct {
	ID       string             `json:"id"`
	Locator  string             `json:"locator"`
	Receipts []string           `json:"receipts"`
	Settings []settings.Setting `json:"settings,omitempty"`
}

// Snapshot captures the current state of c. Sub-commands are listed by id
// when c has an owner.
func Snapshot(c *Command) Plan {
	if c == nil {
		return Plan{}
	}
	plan := Plan{
		CommandID:    c.id,
		Inputs:       make([]PlanInput, 0, len(c.resources)),
		Filterchains: make([]PlanChain, 0, len(c.filterchains)),
		Outputs:      make([]PlanOutput, 0, len(c.outputs)),
	}
	if c.parent != nil {
		plan.ParentID = c.parent.id
	}
	for _, entry := range c.resources {
		res := entry.resource
		plan.Inputs = append(plan.Inputs, PlanInput{
			ID:              entry.id,
			Locator:         res.Locator(),
			Receipt:         entry.receipt.id,
			Settings:        entry.settings.Items(),
			Probed:          res.HasMetadata(),
			DurationSeconds: res.Duration().Seconds(),
			VideoStreams:    len(res.VideoStreams()),
			AudioStreams:    len(res.AudioStreams()),
		})
	}
	for _, chain := range c.filterchains {
		pc := PlanChain{
			ID:      chain.id,
			Inputs:  receiptIDs(chain.inputs),
			Edges:   make([]PlanEdge, 0, len(chain.edges)),
			Outputs: receiptIDs(chain.Receipts()),
		}
		for _, edge := range chain.edges {
			pc.Edges = append(pc.Edges, PlanEdge{
				Filter:     edge.Filter.Name(),
				Expression: edge.Filter.Expression(),
				Inputs:     receiptIDs(edge.Inputs),
				Outputs:    receiptIDs(edge.Outputs),
			})
		}
		plan.Filterchains = append(plan.Filterchains, pc)
	}
	for _, out := range c.outputs {
		plan.Outputs = append(plan.Outputs, PlanOutput{
			ID:       out.id,
			Locator:  out.resource.Locator(),
			Receipts: receiptIDs(out.receipts),
			Settings: out.settings.Items(),
		})
	}
	if c.owner != nil {
		for _, other := range c.owner.Commands() {
			if other.parent == c {
				plan.Children = append(plan.Children, other.id)
			}
		}
	}
	return plan
}

// Counts returns the number of inputs, filterchains and outputs in the plan.
func (p Plan) Counts() (inputs, chains, outputs int) {
	return len(p.Inputs), len(p.Filterchains), len(p.Outputs)
}

func receiptIDs(receipts []Receipt) []string {
	ids := make([]string, 0, len(receipts))
	for _, r := range receipts {
		ids = append(ids, r.id)
	}
	return ids
}
