package mover

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies mover errors.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindMoveFailure
	KindAggregatedMoveFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindMoveFailure:
		return "move_failure"
	case KindAggregatedMoveFailure:
		return "aggregated_move_failure"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMoveFailed      = errors.New("move failed")
)

// KindOf reports the Kind carried by err or anything it wraps.
func KindOf(err error) Kind {
	var classifier interface{ Kind() Kind }
	if errors.As(err, &classifier) {
		return classifier.Kind()
	}
	return KindUnknown
}

// ArgumentError rejects a batch before any entry is attempted.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, e.Param, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

func (e *ArgumentError) Kind() Kind { return KindInvalidArgument }

// MoveFailure records one entry whose move did not complete.
type MoveFailure struct {
	Index       int
	Source      string
	Destination string
	Err         error
}

func (f *MoveFailure) Error() string {
	return fmt.Sprintf("entry %d: move %s to %s: %v", f.Index, f.Source, f.Destination, f.Err)
}

func (f *MoveFailure) Unwrap() error { return f.Err }

func (f *MoveFailure) Kind() Kind { return KindMoveFailure }

// BatchError aggregates every failed entry of a batch in index order.
type BatchError struct {
	Failures []*MoveFailure
	Total    int
}

func (e *BatchError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		parts = append(parts, failure.Error())
	}
	return fmt.Sprintf("%d of %d moves failed: %s", len(e.Failures), e.Total, strings.Join(parts, " | "))
}

// Unwrap exposes each failure so errors.Is/As can match underlying causes.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures)+1)
	errs = append(errs, ErrMoveFailed)
	for _, failure := range e.Failures {
		errs = append(errs, failure)
	}
	return errs
}

func (e *BatchError) Kind() Kind { return KindAggregatedMoveFailure }

// FailedIndices lists the indices of entries that did not move.
func (e *BatchError) FailedIndices() []int {
	indices := make([]int, 0, len(e.Failures))
	for _, failure := range e.Failures {
		indices = append(indices, failure.Index)
	}
	return indices
}
