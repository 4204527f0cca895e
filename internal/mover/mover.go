package mover

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"movefiles/internal/fileutil"
	"movefiles/internal/logging"
)

// MoveFunc relocates one file. It must fail when destination exists and
// overwrite is false.
type MoveFunc func(source, destination string, overwrite bool) (fileutil.Method, error)

// Option customizes a Mover.
type Option func(*Mover)

// WithMoveFunc replaces the filesystem move primitive.
func WithMoveFunc(fn MoveFunc) Option {
	return func(m *Mover) {
		m.move = fn
	}
}

// WithVerifiedCopies toggles size and checksum verification for
// cross-device copies made by the default primitive.
func WithVerifiedCopies(verify bool) Option {
	return func(m *Mover) {
		m.verify = verify
	}
}

// Mover applies batches of moves.
type Mover struct {
	logger *slog.Logger
	move   MoveFunc
	verify bool
}

// New constructs a Mover. A nil logger discards all log output.
func New(logger *slog.Logger, opts ...Option) *Mover {
	m := &Mover{
		logger: logging.NewComponentLogger(logger, "mover"),
		verify: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	if m.move == nil {
		m.move = m.fileMove
	}
	return m
}

// MoveAll moves with a default Mover that does not log.
func MoveAll(paths []string, sourcePrefix, destinationDir string, opts Options) error {
	_, err := New(nil).MoveAll(paths, sourcePrefix, destinationDir, opts)
	return err
}

// MoveAll moves every entry of paths from sourcePrefix to destinationDir in
// order. Arguments are validated first; a rejected batch returns an
// *ArgumentError and attempts nothing. A destinationDir that is empty or only
// whitespace is rejected, as is a NUL byte in either directory. Entry
// failures do not stop the batch; they are returned together as a
// *BatchError after the last entry.
func (m *Mover) MoveAll(paths []string, sourcePrefix, destinationDir string, opts Options) (Report, error) {
	m.logger.Debug("batch received",
		logging.Int("entries", len(paths)),
		logging.String("source_prefix", sourcePrefix),
		logging.String("destination_dir", destinationDir),
		logging.Bool("overwrite", opts.Overwrite),
		logging.Bool("dry_run", opts.DryRun),
	)

	if err := validate(sourcePrefix, destinationDir); err != nil {
		logging.ErrorWithContext(m.logger, "batch rejected", "batch_invalid_argument",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the source prefix and destination directory"),
		)
		return Report{}, err
	}

	report := Report{
		Overwrite: opts.Overwrite,
		DryRun:    opts.DryRun,
		Entries:   make([]Entry, 0, len(paths)),
	}
	var failures []*MoveFailure
	for i, name := range paths {
		entry := m.moveOne(i, name, sourcePrefix, destinationDir, opts)
		if entry.Status == StatusFailed {
			failures = append(failures, &MoveFailure{
				Index:       entry.Index,
				Source:      entry.Source,
				Destination: entry.Destination,
				Err:         entry.Err,
			})
		}
		report.Entries = append(report.Entries, entry)
	}

	moved, planned, failed := report.Counts()
	m.logger.Debug("batch finished",
		logging.Int("moved", moved),
		logging.Int("planned", planned),
		logging.Int("failed", failed),
	)

	if len(failures) > 0 {
		return report, &BatchError{Failures: failures, Total: len(paths)}
	}
	return report, nil
}

func (m *Mover) moveOne(index int, name, sourcePrefix, destinationDir string, opts Options) Entry {
	entry := Entry{
		Index:       index,
		Path:        name,
		Source:      filepath.Join(sourcePrefix, name),
		Destination: filepath.Join(destinationDir, name),
	}
	if info, err := os.Lstat(entry.Source); err == nil && info.Mode().IsRegular() {
		entry.Size = info.Size()
	}

	attrs := []logging.Attr{
		logging.Int("index", index),
		logging.String("source", entry.Source),
		logging.String("destination", entry.Destination),
		logging.Int64("size_bytes", entry.Size),
	}

	if opts.DryRun {
		m.logger.Info("would move file", logging.Args(append(attrs, logging.Bool("dry_run", true))...)...)
		entry.Status = StatusPlanned
		return entry
	}

	m.logger.Info("moving file", logging.Args(attrs...)...)
	method, err := m.move(entry.Source, entry.Destination, opts.Overwrite)
	entry.Method = string(method)
	if err != nil {
		entry.Status = StatusFailed
		entry.Err = err
		logging.ErrorWithContext(m.logger, "file move failed", "move_failed",
			append(attrs,
				logging.Error(err),
				logging.String(logging.FieldErrorHint, moveHint(err, opts.Overwrite)),
			)...,
		)
		return entry
	}
	entry.Status = StatusMoved
	m.logger.Debug("file moved", logging.Args(append(attrs, logging.String("method", entry.Method))...)...)
	return entry
}

func (m *Mover) fileMove(source, destination string, overwrite bool) (fileutil.Method, error) {
	return fileutil.Move(source, destination, fileutil.MoveOptions{Overwrite: overwrite, Verify: m.verify})
}

func validate(sourcePrefix, destinationDir string) error {
	if strings.ContainsRune(sourcePrefix, 0) {
		return &ArgumentError{Param: "source_prefix", Reason: "contains a NUL byte"}
	}
	if strings.TrimSpace(destinationDir) == "" {
		return &ArgumentError{Param: "destination_dir", Reason: "is required"}
	}
	if strings.ContainsRune(destinationDir, 0) {
		return &ArgumentError{Param: "destination_dir", Reason: "contains a NUL byte"}
	}
	return nil
}

func moveHint(err error, overwrite bool) string {
	switch {
	case errors.Is(err, fs.ErrExist) && !overwrite:
		return "destination exists; rerun with --force to overwrite"
	case errors.Is(err, fs.ErrNotExist):
		return "source or destination directory is missing"
	case errors.Is(err, fs.ErrPermission):
		return "check permissions on the source and destination directories"
	default:
		return "check logs for details"
	}
}
