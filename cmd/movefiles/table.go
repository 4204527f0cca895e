package main

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"movefiles/internal/mover"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderSummaryTable tallies a batch by status with the bytes each status covers.
func renderSummaryTable(report mover.Report) string {
	moved, planned, failed := report.Counts()
	counts := map[mover.Status]int{
		mover.StatusMoved:   moved,
		mover.StatusPlanned: planned,
		mover.StatusFailed:  failed,
	}
	var rows [][]string
	for _, status := range []mover.Status{mover.StatusMoved, mover.StatusPlanned, mover.StatusFailed} {
		if counts[status] == 0 {
			continue
		}
		rows = append(rows, []string{
			string(status),
			strconv.Itoa(counts[status]),
			formatBytes(report.TotalBytes(status)),
		})
	}
	rows = append(rows, []string{"total", strconv.Itoa(len(report.Entries)), formatBytes(totalBytes(report))})
	return renderTable([]string{"Status", "Files", "Size"}, rows, []columnAlignment{alignLeft, alignRight, alignRight})
}

func totalBytes(report mover.Report) int64 {
	var total int64
	for _, entry := range report.Entries {
		total += entry.Size
	}
	return total
}

func formatBytes(size int64) string {
	if size <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(size))
}
