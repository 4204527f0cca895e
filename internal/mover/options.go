package mover

// Options controls how a batch is applied.
type Options struct {
	// Overwrite lets a move replace an existing destination file.
	Overwrite bool
	// DryRun reports intended moves without touching the filesystem.
	DryRun bool
}

// WithOverwrite returns Options with only the overwrite flag set.
func WithOverwrite(overwrite bool) Options {
	return Options{Overwrite: overwrite}
}

// WithDryRun returns a copy of o with the dry-run flag set.
func (o Options) WithDryRun(dryRun bool) Options {
	o.DryRun = dryRun
	return o
}
