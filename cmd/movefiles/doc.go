// Package main hosts the movefiles CLI entrypoint and command graph.
//
// The root command reads a newline-separated list of files from standard
// input or a file, moves each listed file from a source prefix into a
// destination directory, and reports the outcome per entry. Flags override
// the TOML configuration; subcommands scaffold and inspect that
// configuration and browse the SQLite run history.
//
// Keep this package lean: the batch semantics live in internal/mover, the
// filesystem primitive in internal/fileutil, and the history in
// internal/journal. This package only wires them together and maps their
// errors onto process exit codes.
package main
