//go:build linux

package fileutil

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// renameNoReplace asks the kernel to refuse an existing destination
// atomically. Filesystems without RENAME_NOREPLACE fall back to
// renameChecked.
func renameNoReplace(source, destination string) error {
	err := unix.Renameat2(unix.AT_FDCWD, source, unix.AT_FDCWD, destination, unix.RENAME_NOREPLACE)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.EEXIST):
		return existsError(source, destination)
	case errors.Is(err, unix.ENOSYS), errors.Is(err, unix.EINVAL):
		return renameChecked(source, destination)
	default:
		return &os.LinkError{Op: "rename", Old: source, New: destination, Err: err}
	}
}
