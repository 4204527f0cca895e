package mover

// Status is the outcome of one batch entry.
type Status string

const (
	StatusMoved   Status = "moved"
	StatusPlanned Status = "planned"
	StatusFailed  Status = "failed"
)

// Entry describes what happened to one listed path.
type Entry struct {
	Index       int
	Path        string
	Source      string
	Destination string
	Status      Status
	// Method is "rename" or "copy" for moved entries.
	Method string
	// Size is the source size observed before the move; 0 when unknown.
	Size int64
	Err  error
}

// Report lists every entry of a batch in path-list order.
type Report struct {
	Overwrite bool
	DryRun    bool
	Entries   []Entry
}

// Counts tallies entries by status.
func (r Report) Counts() (moved, planned, failed int) {
	for _, entry := range r.Entries {
		switch entry.Status {
		case StatusMoved:
			moved++
		case StatusPlanned:
			planned++
		case StatusFailed:
			failed++
		}
	}
	return moved, planned, failed
}

// TotalBytes sums the observed sizes of entries with the given status.
func (r Report) TotalBytes(status Status) int64 {
	var total int64
	for _, entry := range r.Entries {
		if entry.Status == status {
			total += entry.Size
		}
	}
	return total
}
