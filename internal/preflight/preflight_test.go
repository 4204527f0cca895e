package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"movefiles/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestRunAll(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = base
	cfg.Paths.LogDir = base
	cfg.Paths.DestinationDir = filepath.Join(base, "missing")

	results := RunAll(&cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if !results[0].Skipped {
		t.Fatalf("expected unset source prefix to be skipped: %+v", results[0])
	}
	if results[1].Passed || results[1].Skipped {
		t.Fatalf("expected missing destination to fail: %+v", results[1])
	}
	if !results[2].Passed || !results[3].Passed {
		t.Fatalf("expected state and log dirs to pass: %+v", results[2:])
	}
	if Passed(results) {
		t.Fatal("expected overall failure")
	}

	if err := os.Mkdir(cfg.Paths.DestinationDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if !Passed(RunAll(&cfg)) {
		t.Fatal("expected overall pass once destination exists")
	}
	if RunAll(nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
