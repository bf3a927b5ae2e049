package preflight

import (
	"path/filepath"

	"github.com/kostyll/HudlFfmpeg/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// DirectoryChecks verifies the state and log directories, and the plan store
// directory when the store is enabled.
func DirectoryChecks(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	results := []Result{
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}
	if cfg.Store.Enabled && cfg.Store.Path != "" {
		storeDir := filepath.Dir(cfg.Store.Path)
		if storeDir != filepath.Clean(cfg.Paths.StateDir) {
			results = append(results, CheckDirectoryAccess("Plan store directory", storeDir))
		}
	}
	return results
}

// RunAll executes the directory checks followed by the binary checks.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	results := DirectoryChecks(cfg)
	for _, status := range CheckSystemDeps(cfg) {
		result := Result{
			Name:     status.Name,
			Passed:   status.Available,
			Optional: status.Optional,
			Detail:   status.Command,
		}
		if !status.Available {
			result.Detail = status.Detail
		}
		results = append(results, result)
	}
	return results
}

// Failed returns results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
