package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"movefiles/internal/mover"
	"movefiles/internal/testsupport"
)

func TestMoveFromStdinMovesFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteTree(t, env.srcDir, "a.txt", "b.txt")

	out, errOut, err := env.run(t, "a.txt\nb.txt\n", "--stdin", "--stdout")
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	requireExitCode(t, err, exitOK)
	requireContains(t, out, "moved\t"+env.src("a.txt")+"\t"+env.dst("a.txt"))
	requireContains(t, out, "moved\t"+env.src("b.txt")+"\t"+env.dst("b.txt"))
	requireContains(t, errOut, "2 moved")

	for _, name := range []string{"a.txt", "b.txt"} {
		if got := testsupport.ReadText(t, env.dst(name)); got != name {
			t.Fatalf("unexpected content for %s: %q", name, got)
		}
		testsupport.AssertMissing(t, env.src(name))
	}

	store := testsupport.MustOpenJournal(t, env.cfg)
	runs, err := store.ListRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Moved != 2 || runs[0].Total != 2 {
		t.Fatalf("unexpected history: %+v", runs)
	}
}

func TestMoveFromInputFileWithSourcePrefixFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	other := t.TempDir()
	testsupport.WriteTree(t, other, "nested/c.txt")
	if err := os.MkdirAll(env.dst("nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	list := filepath.Join(t.TempDir(), "list.txt")
	testsupport.WriteText(t, list, "nested/c.txt\r\n")

	if _, _, err := env.run(t, "", "-I", list, "-s", other); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if got := testsupport.ReadText(t, env.dst("nested/c.txt")); got != "nested/c.txt" {
		t.Fatalf("unexpected content %q", got)
	}
	testsupport.AssertMissing(t, filepath.Join(other, "nested", "c.txt"))
}

func TestMoveExistingDestinationAggregatesFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteTree(t, env.srcDir, "a.txt", "b.txt", "c.txt")
	testsupport.WriteText(t, env.dst("b.txt"), "keep")

	_, errOut, err := env.run(t, "a.txt\nb.txt\nc.txt", "-i")
	if err == nil {
		t.Fatal("expected aggregated failure")
	}
	requireExitCode(t, err, exitMoveFailed)
	requireContains(t, errOut, "1 of 3 failed")

	var batchErr *mover.BatchError
	if !errors.As(err, &batchErr) {
		t.Fatalf("expected *mover.BatchError, got %T", err)
	}
	if indices := batchErr.FailedIndices(); len(indices) != 1 || indices[0] != 1 {
		t.Fatalf("unexpected failed indices %v", indices)
	}
	if got := testsupport.ReadText(t, env.dst("b.txt")); got != "keep" {
		t.Fatalf("existing destination overwritten: %q", got)
	}
	testsupport.ReadText(t, env.src("b.txt"))
	testsupport.ReadText(t, env.dst("a.txt"))
	testsupport.ReadText(t, env.dst("c.txt"))
}

func TestMoveForceOverwrites(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteTree(t, env.srcDir, "a.txt")
	testsupport.WriteText(t, env.dst("a.txt"), "old")

	if _, _, err := env.run(t, "a.txt\n", "-i", "--force"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if got := testsupport.ReadText(t, env.dst("a.txt")); got != "a.txt" {
		t.Fatalf("expected overwritten destination, got %q", got)
	}
}

func TestMoveNoopLeavesFilesInPlace(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteTree(t, env.srcDir, "a.txt")

	out, errOut, err := env.run(t, "a.txt\nmissing.txt\n", "-i", "-n", "-o", "--format", "json")
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	requireContains(t, errOut, "2 planned (dry run)")

	var report reportDTO
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode json report: %v\n%s", err, out)
	}
	if !report.DryRun || report.Planned != 2 || report.Moved != 0 || len(report.Entries) != 2 {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.Entries[1].Status != "planned" {
		t.Fatalf("dry run should plan missing sources too, got %+v", report.Entries[1])
	}
	testsupport.ReadText(t, env.src("a.txt"))
	testsupport.AssertMissing(t, env.dst("a.txt"))
}

func TestMoveReportToFileAsYAML(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteTree(t, env.srcDir, "a.txt")
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	out, _, err := env.run(t, "a.txt\n", "-i", "-O", reportPath, "--format", "yaml")
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if out != "" {
		t.Fatalf("report should not go to stdout without --stdout, got %q", out)
	}

	var report reportDTO
	if err := yaml.Unmarshal([]byte(testsupport.ReadText(t, reportPath)), &report); err != nil {
		t.Fatalf("decode yaml report: %v", err)
	}
	if report.Total != 1 || report.Moved != 1 || report.Entries[0].Method != "rename" {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.Entries[0].SizeBytes != int64(len("a.txt")) {
		t.Fatalf("unexpected size %d", report.Entries[0].SizeBytes)
	}
}

func TestMovePasteboard(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteTree(t, env.srcDir, "a.txt")

	var copied string
	previous := clipboardWriter
	clipboardWriter = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWriter = previous })

	if _, _, err := env.run(t, "a.txt\n", "-i", "-p"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	requireContains(t, copied, "moved\t"+env.src("a.txt"))
}

func TestMoveSummaryTable(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.src("big.bin"), 2048)

	out, _, err := env.run(t, "big.bin\n", "-i", "--table")
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	requireContains(t, out, "STATUS")
	requireContains(t, out, "moved")
	requireContains(t, out, "2.0 KiB")
}

func TestMoveEmptyListSucceeds(t *testing.T) {
	env := setupCLITestEnv(t)

	_, errOut, err := env.run(t, "", "-i")
	if err != nil {
		t.Fatalf("empty batch failed: %v", err)
	}
	requireContains(t, errOut, "input listed no files")
}

func TestMoveInputErrors(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := env.run(t, "a.txt\n")
	if !errors.Is(err, errNoInput) {
		t.Fatalf("expected errNoInput, got %v", err)
	}
	requireExitCode(t, err, exitNoInput)

	_, _, err = env.run(t, "", "-I", filepath.Join(t.TempDir(), "absent.txt"))
	requireExitCode(t, err, exitReadFailed)

	_, _, err = env.run(t, "\x80\x81not text", "-i")
	requireExitCode(t, err, exitInvalidInput)
}

func TestMoveMissingDestinationIsInvalidArgument(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Paths.DestinationDir = ""
	env.configPath = testsupport.WriteConfigFile(t, env.cfg)
	testsupport.WriteTree(t, env.srcDir, "a.txt")

	_, _, err := env.run(t, "a.txt\n", "-i")
	requireExitCode(t, err, exitInvalidArgument)
	if !errors.Is(err, mover.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	testsupport.ReadText(t, env.src("a.txt"))

	store := testsupport.MustOpenJournal(t, env.cfg)
	runs, err := store.ListRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 || !strings.Contains(runs[0].ErrorMessage, "destination_dir") {
		t.Fatalf("expected rejected run in history, got %+v", runs)
	}
}

func TestMoveNoHistory(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteTree(t, env.srcDir, "a.txt")

	if _, _, err := env.run(t, "a.txt\n", "-i", "--no-history"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	testsupport.AssertMissing(t, env.cfg.HistoryPath())
}

func TestMoveRefusesWhileLockHeld(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteTree(t, env.srcDir, "a.txt")
	if err := env.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	held := flock.New(env.cfg.LockPath())
	if ok, err := held.TryLock(); err != nil || !ok {
		t.Fatalf("hold lock: ok=%v err=%v", ok, err)
	}
	t.Cleanup(func() { _ = held.Unlock() })

	_, _, err := env.run(t, "a.txt\n", "-i")
	if err == nil || !strings.Contains(err.Error(), "another movefiles batch is running") {
		t.Fatalf("expected lock error, got %v", err)
	}
	testsupport.ReadText(t, env.src("a.txt"))
}

func TestMoveWritesRunLog(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteTree(t, env.srcDir, "a.txt")

	if _, _, err := env.run(t, "a.txt\n", "-i"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	matches, err := filepath.Glob(filepath.Join(env.cfg.Paths.LogDir, "movefiles-*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one run log, got %v (err=%v)", matches, err)
	}
	log := testsupport.ReadText(t, matches[0])
	for _, want := range []string{`"process":"movefiles"`, `"component":"mover"`, `"msg":"moving file"`} {
		requireContains(t, log, want)
	}
}

func TestPrintConfigFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "", "-c", "-d", "/override")
	if err != nil {
		t.Fatalf("print config failed: %v", err)
	}
	requireContains(t, out, "Config file")
	requireContains(t, out, env.configPath)
	requireContains(t, out, "[paths]")
	requireContains(t, out, "/override")
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCLI(t, []string{"-V"}, "")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	requireContains(t, out, version)
}

func TestRejectsInvalidFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := env.run(t, "a.txt\n", "-i", "--format", "xml")
	requireExitCode(t, err, exitConfig)
}
