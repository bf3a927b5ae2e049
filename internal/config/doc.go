// Package config loads ffplan's TOML configuration.
//
// Load fills unset values from Default, expands "~" in every path, applies
// the FFPLAN_FFPROBE override and validates the result. Directories named by
// the config are created on demand by EnsureDirectories.
package config
