package main

import (
	"errors"
	"fmt"

	"movefiles/internal/lines"
	"movefiles/internal/mover"
)

// Process exit codes. Values mirror the failure kinds a batch can end with.
const (
	exitOK              = 0
	exitFailure         = 1
	exitInvalidInput    = 2
	exitInvalidArgument = 3
	exitNoInput         = 4
	exitConfig          = 5
	exitMoveFailed      = 8
	exitReadFailed      = 9
)

var errNoInput = errors.New("no input option specified; use --stdin or --input")

// inputReadError marks input that could not be read at all, as opposed to
// input that was read but is not text.
type inputReadError struct {
	Source string
	Err    error
}

func (e *inputReadError) Error() string {
	return fmt.Sprintf("read input from %s: %v", e.Source, e.Err)
}

func (e *inputReadError) Unwrap() error { return e.Err }

type configError struct {
	Err error
}

func (e *configError) Error() string {
	return fmt.Sprintf("configuration: %v", e.Err)
}

func (e *configError) Unwrap() error { return e.Err }

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var (
		readErr *inputReadError
		cfgErr  *configError
	)
	switch {
	case errors.Is(err, errNoInput):
		return exitNoInput
	case errors.As(err, &readErr):
		return exitReadFailed
	case errors.Is(err, lines.ErrInvalidInput):
		return exitInvalidInput
	case errors.As(err, &cfgErr):
		return exitConfig
	}
	switch mover.KindOf(err) {
	case mover.KindInvalidArgument:
		return exitInvalidArgument
	case mover.KindMoveFailure, mover.KindAggregatedMoveFailure:
		return exitMoveFailed
	}
	return exitFailure
}
