// Package preflight provides readiness checks for the directories and
// external binaries ffplan depends on.
//
// The CLI "ffplan deps" command runs RunAll and renders the results. The
// build command runs the directory checks before opening the plan store.
package preflight
