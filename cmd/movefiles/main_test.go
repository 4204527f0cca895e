package main

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"movefiles/internal/config"
	"movefiles/internal/lines"
	"movefiles/internal/mover"
)

func TestExitCode(t *testing.T) {
	batch := &mover.BatchError{
		Failures: []*mover.MoveFailure{{Index: 0, Source: "a", Destination: "b", Err: fs.ErrExist}},
		Total:    1,
	}
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"no input", errNoInput, exitNoInput},
		{"read failure", &inputReadError{Source: "list.txt", Err: fs.ErrPermission}, exitReadFailed},
		{"invalid input", fmt.Errorf("stdin: %w", lines.ErrInvalidInput), exitInvalidInput},
		{"config", &configError{Err: config.ErrInvalid}, exitConfig},
		{"invalid argument", &mover.ArgumentError{Param: "destination_dir", Reason: "is required"}, exitInvalidArgument},
		{"aggregated failure", batch, exitMoveFailed},
		{"wrapped aggregated failure", fmt.Errorf("run: %w", batch), exitMoveFailed},
		{"other", errors.New("boom"), exitFailure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestGetVersionIsNeverEmpty(t *testing.T) {
	if getVersion() == "" {
		t.Fatal("expected a version string")
	}
}
