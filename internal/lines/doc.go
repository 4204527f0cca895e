// Package lines turns a newline-separated file listing into an ordered slice
// of path entries.
//
// Both "\n" and "\r\n" terminate a line. A single empty element produced by a
// trailing terminator is dropped; every other entry, including blank or
// whitespace-only interior lines, is returned untouched so callers see exactly
// what the listing contained. Input that is not text fails with
// ErrInvalidInput.
package lines
