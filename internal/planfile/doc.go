// Package planfile reads command plans from TOML documents and builds them
// into a command graph.
//
// A plan file lists inputs, named filterchains and outputs. Chains and outputs
// select streams with references:
//
//	input:<n>        receipt of the n-th input
//	input:last       receipt of the most recent input
//	input:*          receipts of every input, in order
//	chain:<name>     final receipts of a named chain
//	chain:<name>:<n> one output pad of a named chain
//
// Build drives the public command API only, so every rule enforced by the
// graph applies to plan files as well.
package planfile
