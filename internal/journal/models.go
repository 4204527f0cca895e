package journal

import "time"

// Run is one recorded batch.
type Run struct {
	ID             string
	StartedAt      time.Time
	FinishedAt     time.Time
	SourcePrefix   string
	DestinationDir string
	Overwrite      bool
	DryRun         bool
	Total          int
	Moved          int
	Planned        int
	Failed         int
	// ErrorMessage holds a batch-level failure such as a rejected argument.
	ErrorMessage string
	// Entries is populated by GetRun and ignored by ListRuns.
	Entries []Entry
}

// Duration is the wall time the batch took.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Entry is the outcome of one input line.
type Entry struct {
	Index        int
	Path         string
	Source       string
	Destination  string
	Status       string
	Method       string
	SizeBytes    int64
	ErrorMessage string
}
