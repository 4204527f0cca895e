package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// Method reports how a file reached its destination.
type Method string

const (
	// MethodRename is a same-filesystem rename.
	MethodRename Method = "rename"
	// MethodCopy is a cross-device copy followed by removal of the source.
	MethodCopy Method = "copy"
)

// ErrDestinationExists marks a move refused because the destination is
// present and overwriting was not requested. It matches fs.ErrExist.
var ErrDestinationExists = fmt.Errorf("destination already exists: %w", fs.ErrExist)

// MoveOptions controls Move.
type MoveOptions struct {
	// Overwrite replaces an existing destination.
	Overwrite bool
	// Verify checks size and SHA256 when a cross-device copy is needed.
	Verify bool
}

// Move relocates source to destination. It renames when both paths share a
// filesystem and falls back to copy+delete for regular files on EXDEV. Parent
// directories of destination are never created.
func Move(source, destination string, opts MoveOptions) (Method, error) {
	if source == "" || destination == "" {
		return "", errors.New("move: source and destination are required")
	}

	var renameErr error
	if opts.Overwrite {
		renameErr = os.Rename(source, destination)
	} else {
		renameErr = renameNoReplace(source, destination)
	}
	if renameErr == nil {
		return MethodRename, nil
	}
	if !isCrossDevice(renameErr) {
		return "", renameErr
	}

	info, err := os.Lstat(source)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("cannot move %s across devices: not a regular file: %w", source, renameErr)
	}
	if err := crossDeviceMove(source, destination, info.Mode().Perm(), opts); err != nil {
		return MethodCopy, err
	}
	return MethodCopy, nil
}

func crossDeviceMove(source, destination string, mode os.FileMode, opts MoveOptions) error {
	createFlag := os.O_EXCL
	if opts.Overwrite {
		createFlag = os.O_TRUNC
	}
	if err := copyFile(source, destination, mode, createFlag, opts.Verify); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return existsError(source, destination)
		}
		return fmt.Errorf("copy %s to %s: %w", source, destination, err)
	}
	if err := os.Remove(source); err != nil {
		return fmt.Errorf("remove %s after copy; both copies remain: %w", source, err)
	}
	return nil
}

// renameChecked is the portable no-replace rename. The existence check and
// the rename are two steps, so a destination created in between is replaced.
func renameChecked(source, destination string) error {
	if _, err := os.Lstat(destination); err == nil {
		return existsError(source, destination)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Rename(source, destination)
}

func existsError(source, destination string) error {
	return fmt.Errorf("rename %s %s: %w", source, destination, ErrDestinationExists)
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV)
}
