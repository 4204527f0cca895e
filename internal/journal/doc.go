// Package journal records movefiles batch runs in SQLite.
//
// Each run stores its options, totals, and one row per input line in index
// order, so `movefiles history` can answer what a past batch did long after
// its console output is gone. The journal is an audit trail only: nothing
// reads it back to decide how a later batch behaves.
//
// Schema changes bump schemaVersion in schema.go; users delete history.db to
// adopt the new schema.
package journal
