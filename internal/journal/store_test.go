package journal_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"movefiles/internal/journal"
	"movefiles/internal/testsupport"
)

func TestRecordRunRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenJournal(t, cfg)
	ctx := context.Background()

	started := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	run := journal.Run{
		ID:             "11111111-aaaa-bbbb-cccc-000000000001",
		StartedAt:      started,
		FinishedAt:     started.Add(1500 * time.Millisecond),
		SourcePrefix:   "/in",
		DestinationDir: "/out",
		Overwrite:      true,
		Total:          2,
		Moved:          1,
		Failed:         1,
		Entries: []journal.Entry{
			{Index: 0, Path: "a.txt", Source: "/in/a.txt", Destination: "/out/a.txt", Status: "moved", Method: "rename", SizeBytes: 12},
			{Index: 1, Path: "b.txt", Source: "/in/b.txt", Destination: "/out/b.txt", Status: "failed", ErrorMessage: "no such file or directory"},
		},
	}
	if err := store.RecordRun(ctx, run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	got, err := store.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected recorded run")
	}
	if !got.StartedAt.Equal(run.StartedAt) || got.Duration() != 1500*time.Millisecond {
		t.Fatalf("unexpected timestamps: %v %v", got.StartedAt, got.Duration())
	}
	if !got.Overwrite || got.DryRun || got.Moved != 1 || got.Failed != 1 || got.Total != 2 {
		t.Fatalf("unexpected run fields: %+v", got)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got.Entries))
	}
	if got.Entries[0] != run.Entries[0] {
		t.Fatalf("entry 0 mismatch: got %+v want %+v", got.Entries[0], run.Entries[0])
	}
	if got.Entries[1].ErrorMessage != "no such file or directory" || got.Entries[1].Method != "" {
		t.Fatalf("entry 1 mismatch: %+v", got.Entries[1])
	}
}

func TestRecordRunRequiresID(t *testing.T) {
	store := testsupport.MustOpenJournal(t, testsupport.NewConfig(t))
	if err := store.RecordRun(context.Background(), journal.Run{}); err == nil {
		t.Fatal("expected error for run without id")
	}
}

func TestRecordRunRejectsDuplicateID(t *testing.T) {
	store := testsupport.MustOpenJournal(t, testsupport.NewConfig(t))
	testsupport.RecordRun(t, store, "dup", time.Now(), "a")
	if err := store.RecordRun(context.Background(), journal.Run{ID: "dup"}); err == nil {
		t.Fatal("expected error for duplicate run id")
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	store := testsupport.MustOpenJournal(t, testsupport.NewConfig(t))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	testsupport.RecordRun(t, store, "run-a", base, "a")
	testsupport.RecordRun(t, store, "run-c", base.Add(2*time.Hour), "c")
	testsupport.RecordRun(t, store, "run-b", base.Add(time.Hour+100*time.Millisecond), "b")

	runs, err := store.ListRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	var ids []string
	for _, run := range runs {
		ids = append(ids, run.ID)
		if run.Entries != nil {
			t.Fatalf("ListRuns should not load entries: %+v", run)
		}
	}
	want := []string{"run-c", "run-b", "run-a"}
	if len(ids) != len(want) {
		t.Fatalf("unexpected runs %v", ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("unexpected order %v, want %v", ids, want)
		}
	}

	limited, err := store.ListRuns(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListRuns limit failed: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "run-c" {
		t.Fatalf("unexpected limited runs %+v", limited)
	}
}

func TestGetRunByPrefix(t *testing.T) {
	store := testsupport.MustOpenJournal(t, testsupport.NewConfig(t))
	ctx := context.Background()
	now := time.Now()
	testsupport.RecordRun(t, store, "abcdef01-0000", now, "x")
	testsupport.RecordRun(t, store, "abcdef02-0000", now, "y")

	run, err := store.GetRun(ctx, "abcdef01")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if run == nil || run.ID != "abcdef01-0000" || len(run.Entries) != 1 {
		t.Fatalf("unexpected run %+v", run)
	}

	if _, err := store.GetRun(ctx, "abcdef"); !errors.Is(err, journal.ErrAmbiguousRunID) {
		t.Fatalf("expected ErrAmbiguousRunID, got %v", err)
	}

	missing, err := store.GetRun(ctx, "ffff")
	if err != nil {
		t.Fatalf("GetRun missing failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown run, got %+v", missing)
	}
}

func TestPruneKeepsNewestRuns(t *testing.T) {
	store := testsupport.MustOpenJournal(t, testsupport.NewConfig(t))
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"r1", "r2", "r3", "r4"} {
		testsupport.RecordRun(t, store, id, base.Add(time.Duration(i)*time.Minute), "f")
	}

	removed, err := store.Prune(ctx, 2)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 runs pruned, got %d", removed)
	}
	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "r4" || runs[1].ID != "r3" {
		t.Fatalf("unexpected runs after prune: %+v", runs)
	}
	if old, err := store.GetRun(ctx, "r1"); err != nil || old != nil {
		t.Fatalf("expected r1 gone, got %+v err=%v", old, err)
	}

	if _, err := store.Prune(ctx, -1); err == nil {
		t.Fatal("expected error for negative keep")
	}
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	first, err := journal.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if first.Path() != path {
		t.Fatalf("unexpected path %q", first.Path())
	}
	if err := first.RecordRun(context.Background(), journal.Run{ID: "persisted", DestinationDir: "/dst"}); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := journal.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()
	run, err := second.GetRun(context.Background(), "persisted")
	if err != nil || run == nil {
		t.Fatalf("expected persisted run, got %+v err=%v", run, err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := journal.Open(" "); err == nil {
		t.Fatal("expected error for blank path")
	}
}
