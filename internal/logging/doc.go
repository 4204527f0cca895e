// Package logging assembles structured slog loggers and formatting helpers used
// by the movefiles CLI and its internal packages.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, fans records out to the terminal and a per-run log file, and tags
// every record with the run identifier so a batch can be traced end to end.
// The package also provides a no-op logger for tests and for callers that do
// not configure a sink; logging through it never fails.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
