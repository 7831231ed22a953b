// Package core implements the business rules behind each mytool subcommand.
//
// Every operation is a pure function: it receives already-typed arguments and
// returns a Result describing the outcome, or a classified error. Nothing in
// this package prints, reads flags, or exits the process; the command layer in
// cmd/mytool owns rendering and exit codes. Keeping that boundary lets the
// rules be exercised directly from unit tests.
package core
