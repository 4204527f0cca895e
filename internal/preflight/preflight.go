package preflight

import (
	"strings"

	"movefiles/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name    string
	Passed  bool
	Skipped bool
	Detail  string
}

// RunAll checks every configured directory. Unset source and destination
// paths are reported as skipped.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	return []Result{
		optionalDirectory("Source prefix", cfg.Paths.SourcePrefix, "working directory is used"),
		optionalDirectory("Destination", cfg.Paths.DestinationDir, "pass --destination-directory"),
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}
}

// Passed reports whether no check failed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed && !r.Skipped {
			return false
		}
	}
	return true
}

func optionalDirectory(name, path, hint string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Skipped: true, Detail: "not configured; " + hint}
	}
	return CheckDirectoryAccess(name, path)
}
