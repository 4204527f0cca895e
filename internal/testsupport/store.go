package testsupport

import (
	"context"
	"testing"
	"time"

	"movefiles/internal/config"
	"movefiles/internal/journal"
)

// MustOpenJournal opens the config's history database and registers cleanup.
func MustOpenJournal(t testing.TB, cfg *config.Config) *journal.Store {
	t.Helper()

	store, err := journal.Open(cfg.HistoryPath())
	if err != nil {
		t.Fatalf("journal.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// RecordRun stores a run with one moved entry per path, started at started.
func RecordRun(t testing.TB, store *journal.Store, id string, started time.Time, paths ...string) journal.Run {
	t.Helper()

	run := journal.Run{
		ID:             id,
		StartedAt:      started,
		FinishedAt:     started.Add(time.Second),
		SourcePrefix:   "/src",
		DestinationDir: "/dst",
		Total:          len(paths),
		Moved:          len(paths),
	}
	for i, path := range paths {
		run.Entries = append(run.Entries, journal.Entry{
			Index:       i,
			Path:        path,
			Source:      "/src/" + path,
			Destination: "/dst/" + path,
			Status:      "moved",
			Method:      "rename",
			SizeBytes:   int64(len(path)),
		})
	}
	if err := store.RecordRun(context.Background(), run); err != nil {
		t.Fatalf("store.RecordRun: %v", err)
	}
	return run
}
