// Package mover moves a batch of listed files from a source prefix into a
// destination directory.
//
// MoveAll validates its arguments before touching the filesystem, then
// processes entries strictly in order. A failed entry is recorded and the
// batch continues; after the last entry the call reports success only when no
// entry failed, otherwise a *BatchError listing every failure by index.
// Nothing is rolled back: files moved before a failure stay moved.
//
// # Dry runs
//
// With Options.DryRun the mover logs and reports what it would do without
// calling the move primitive. Sources are not checked for existence, so a
// dry run can report a plan that a real run would partially reject.
//
// # Logging
//
// The logger is injected through New; a nil logger discards output. Records
// carry the "mover" component and the entry index, source and destination.
package mover
