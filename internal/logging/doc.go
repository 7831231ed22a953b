// Package logging assembles structured slog loggers used by the mytool CLI.
//
// It owns the console and JSON handlers, maps configuration levels onto slog,
// and exposes context-aware helpers so command code can tag log lines with the
// running command and invocation ID. Diagnostics always go to stderr so they
// never mix with command results on stdout. A no-op logger is provided for
// tests and wiring code that cannot fail.
package logging
