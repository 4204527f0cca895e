package journal

import (
	"database/sql"
	"time"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(scanner rowScanner) (Run, error) {
	var (
		run        Run
		startedRaw string
		finishRaw  string
		overwrite  int
		dryRun     int
		message    sql.NullString
	)
	if err := scanner.Scan(
		&run.ID,
		&startedRaw,
		&finishRaw,
		&run.SourcePrefix,
		&run.DestinationDir,
		&overwrite,
		&dryRun,
		&run.Total,
		&run.Moved,
		&run.Planned,
		&run.Failed,
		&message,
	); err != nil {
		return Run{}, err
	}
	run.StartedAt = parseTime(startedRaw)
	run.FinishedAt = parseTime(finishRaw)
	run.Overwrite = overwrite != 0
	run.DryRun = dryRun != 0
	run.ErrorMessage = message.String
	return run, nil
}

// timeLayout is fixed width so started_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func nullableString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

func nullableSize(size int64) sql.NullInt64 {
	if size <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: size, Valid: true}
}
