// Package preflight checks that the directories a batch touches are usable.
//
// The CLI "movefiles config validate" command runs these checks to show
// whether the configured source prefix, destination, and state directory
// exist and are accessible. A batch never runs them itself: an unusable
// directory surfaces there as per-entry move failures instead.
package preflight
