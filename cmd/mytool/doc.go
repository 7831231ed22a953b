// Package main hosts the mytool CLI entrypoint and command graph.
//
// One executable dispatches to several subcommands that share a common set of
// global options and a single exit-code convention: 0 for success, 1 when a
// command ran but failed, 2 for malformed invocations. Global options are only
// recognized before the subcommand name; everything after it belongs to the
// subcommand's own flag set.
//
// Keep this package lean: business rules live in internal/core and return
// results instead of printing. Commands here parse, call into core, render, and
// leave exit handling to execute.
package main
