// Package main hosts the ffplan CLI.
//
// The Cobra command tree loads plan files, builds their command graphs,
// renders the result as tables or JSON, and manages the local plan store.
// Configuration resolution, logger setup and prober wiring live in the shared
// command context so subcommands stay declarative.
package main
