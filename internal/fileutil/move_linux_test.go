//go:build linux

package fileutil

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func deviceOf(t *testing.T, path string) uint64 {
	t.Helper()
	var st syscall.Stat_t
	if err := syscall.Stat(path, &st); err != nil {
		t.Skipf("stat %s: %v", path, err)
	}
	return uint64(st.Dev)
}

func TestMoveAcrossDevicesKeepsDestinationWhenSourceUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}
	shm, err := os.MkdirTemp("/dev/shm", "movefiles-test-")
	if err != nil {
		t.Skipf("no /dev/shm: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(shm) })

	dir := t.TempDir()
	if deviceOf(t, shm) == deviceOf(t, dir) {
		t.Skip("/dev/shm and temp dir share a device")
	}

	src := filepath.Join(shm, "a.txt")
	writeTestFile(t, src, "secret")
	if err := os.Chmod(src, 0); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "a.txt")
	writeTestFile(t, dst, "precious")

	for _, overwrite := range []bool{false, true} {
		if _, err := Move(src, dst, MoveOptions{Overwrite: overwrite, Verify: true}); err == nil {
			t.Fatalf("overwrite=%v: expected error for unreadable source", overwrite)
		}
		got, err := os.ReadFile(dst)
		if err != nil || string(got) != "precious" {
			t.Fatalf("overwrite=%v: destination lost: %q, %v", overwrite, got, err)
		}
	}
	if _, err := os.Lstat(src); err != nil {
		t.Fatalf("source should remain: %v", err)
	}
}

func TestMoveAcrossDevicesCopiesAndRemovesSource(t *testing.T) {
	shm, err := os.MkdirTemp("/dev/shm", "movefiles-test-")
	if err != nil {
		t.Skipf("no /dev/shm: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(shm) })

	dir := t.TempDir()
	if deviceOf(t, shm) == deviceOf(t, dir) {
		t.Skip("/dev/shm and temp dir share a device")
	}

	src := filepath.Join(shm, "a.txt")
	writeTestFile(t, src, "payload")
	dst := filepath.Join(dir, "a.txt")

	method, err := Move(src, dst, MoveOptions{Verify: true})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if method != MethodCopy {
		t.Fatalf("method = %q, want %q", method, MethodCopy)
	}
	if got, _ := os.ReadFile(dst); string(got) != "payload" {
		t.Fatalf("content mismatch: %q", got)
	}
	if _, err := os.Lstat(src); !os.IsNotExist(err) {
		t.Fatalf("expected source removed, lstat err = %v", err)
	}
}
