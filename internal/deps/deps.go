package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement names an external binary and whether ffplan can run without it.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status is the outcome of checking one Requirement. Command holds the
// resolved path when the binary was found.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// Check looks the requirement's command up on PATH.
func (r Requirement) Check() Status {
	r.Command = strings.TrimSpace(r.Command)
	r.Description = strings.TrimSpace(r.Description)
	status := Status{Requirement: r}
	if r.Command == "" {
		status.Detail = "command not configured"
		return status
	}
	resolved, err := exec.LookPath(r.Command)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", r.Command)
		return status
	}
	status.Command = resolved
	status.Available = true
	return status
}

// CheckBinaries checks each requirement in order.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, req.Check())
	}
	return results
}

// MissingRequired filters statuses down to unavailable, non-optional binaries.
func MissingRequired(statuses []Status) []Status {
	var missing []Status
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing = append(missing, status)
		}
	}
	return missing
}
