package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"movefiles/internal/mover"
)

type reportDTO struct {
	RunID     string     `json:"run_id" yaml:"run_id"`
	DryRun    bool       `json:"dry_run" yaml:"dry_run"`
	Overwrite bool       `json:"overwrite" yaml:"overwrite"`
	Total     int        `json:"total" yaml:"total"`
	Moved     int        `json:"moved" yaml:"moved"`
	Planned   int        `json:"planned" yaml:"planned"`
	Failed    int        `json:"failed" yaml:"failed"`
	Entries   []entryDTO `json:"entries" yaml:"entries"`
}

type entryDTO struct {
	Index       int    `json:"index" yaml:"index"`
	Path        string `json:"path" yaml:"path"`
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Status      string `json:"status" yaml:"status"`
	Method      string `json:"method,omitempty" yaml:"method,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newReportDTO(runID string, total int, report mover.Report) reportDTO {
	moved, planned, failed := report.Counts()
	dto := reportDTO{
		RunID:     runID,
		DryRun:    report.DryRun,
		Overwrite: report.Overwrite,
		Total:     total,
		Moved:     moved,
		Planned:   planned,
		Failed:    failed,
		Entries:   make([]entryDTO, 0, len(report.Entries)),
	}
	for _, entry := range report.Entries {
		item := entryDTO{
			Index:       entry.Index,
			Path:        entry.Path,
			Source:      entry.Source,
			Destination: entry.Destination,
			Status:      string(entry.Status),
			Method:      entry.Method,
			SizeBytes:   entry.Size,
		}
		if entry.Err != nil {
			item.Error = entry.Err.Error()
		}
		dto.Entries = append(dto.Entries, item)
	}
	return dto
}

func encodeReport(w io.Writer, format string, dto reportDTO) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return encodeTextReport(w, dto)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dto)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dto); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// encodeTextReport writes one tab-separated line per entry:
// status, source, destination and, for failures, the error.
func encodeTextReport(w io.Writer, dto reportDTO) error {
	for _, entry := range dto.Entries {
		line := entry.Status + "\t" + entry.Source + "\t" + entry.Destination
		if entry.Error != "" {
			line += "\t" + entry.Error
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
