package planstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kostyll/HudlFfmpeg/internal/command"
	"github.com/kostyll/HudlFfmpeg/internal/fault"
)

// Status is the lifecycle state of a stored plan.
type Status string

const (
	// StatusBuilt marks a plan whose graph was built successfully.
	StatusBuilt Status = "built"
	// StatusInvalid marks a plan rejected by the graph; the plan file needs editing.
	StatusInvalid Status = "invalid"
	// StatusFailed marks a plan that failed for an external reason such as a probe error.
	StatusFailed Status = "failed"
)

// Record is a stored plan.
type Record struct {
	ID           int64
	Name         string
	CommandID    string
	Status       Status
	PlanJSON     string
	Inputs       int
	Filterchains int
	Outputs      int
	ErrorKind    string
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Plan decodes the stored snapshot.
func (r *Record) Plan() (command.Plan, error) {
	var plan command.Plan
	if r == nil || r.PlanJSON == "" {
		return plan, fmt.Errorf("record has no plan snapshot")
	}
	if err := json.Unmarshal([]byte(r.PlanJSON), &plan); err != nil {
		return plan, fmt.Errorf("decode plan snapshot: %w", err)
	}
	return plan, nil
}

// FailureStatus maps a build error to the status persisted for it. Errors in
// the plan itself need an edit; anything else may succeed on retry.
func FailureStatus(err error) Status {
	switch fault.Kind(err) {
	case "precondition", "validation", "range", "configuration":
		return StatusInvalid
	default:
		return StatusFailed
	}
}
