package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"movefiles/internal/config"
	"movefiles/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent batch runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withJournal(func(_ *config.Config, store *journal.Store) error {
				runs, err := store.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
					return nil
				}
				table := renderTable(
					[]string{"Run", "Started", "Mode", "Destination", "Total", "Moved", "Failed", "Took"},
					buildHistoryRows(runs),
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}
	historyCmd.Flags().IntVarP(&limit, "limit", "l", 20, "Number of runs to list (0 lists all)")

	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryPruneCommand(ctx))
	return historyCmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show per-file outcomes of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withJournal(func(_ *config.Config, store *journal.Store) error {
				run, err := store.GetRun(cmd.Context(), args[0])
				if err != nil {
					if errors.Is(err, journal.ErrAmbiguousRunID) {
						return fmt.Errorf("%w; use more characters of the run id", err)
					}
					return err
				}
				if run == nil {
					return fmt.Errorf("run %s not found", strings.TrimSpace(args[0]))
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, line := range renderSectionHeader("Run "+run.ID, colorize) {
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, renderStatusLine("Started", statusInfo, run.StartedAt.Local().Format(time.DateTime), colorize))
				fmt.Fprintln(out, renderStatusLine("Source", statusInfo, displayPrefix(run.SourcePrefix), colorize))
				fmt.Fprintln(out, renderStatusLine("Destination", statusInfo, run.DestinationDir, colorize))
				fmt.Fprintln(out, renderStatusLine("Mode", statusInfo, runMode(*run), colorize))
				resultKind := statusOK
				if run.Failed > 0 || run.ErrorMessage != "" {
					resultKind = statusError
				}
				result := fmt.Sprintf("%d moved, %d planned, %d failed of %d", run.Moved, run.Planned, run.Failed, run.Total)
				if run.ErrorMessage != "" {
					result = run.ErrorMessage
				}
				fmt.Fprintln(out, renderStatusLine("Result", resultKind, result, colorize))

				if len(run.Entries) == 0 {
					return nil
				}
				fmt.Fprintln(out)
				table := renderTable(
					[]string{"#", "Status", "Path", "Method", "Size", "Error"},
					buildEntryRows(run.Entries),
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				)
				fmt.Fprintln(out, table)
				return nil
			})
		},
	}
}

func newHistoryPruneCommand(ctx *commandContext) *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete runs beyond history.keep_runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withJournal(func(cfg *config.Config, store *journal.Store) error {
				limit := cfg.History.KeepRuns
				if cmd.Flags().Changed("keep") {
					limit = keep
				}
				removed, err := store.Prune(cmd.Context(), limit)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d run(s); kept the newest %d\n", removed, limit)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&keep, "keep", 0, "Number of runs to keep (defaults to history.keep_runs)")
	return cmd
}

func buildHistoryRows(runs []journal.Run) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortID(run.ID),
			run.StartedAt.Local().Format(time.DateTime),
			runMode(run),
			run.DestinationDir,
			strconv.Itoa(run.Total),
			strconv.Itoa(run.Moved),
			strconv.Itoa(run.Failed),
			run.Duration().Round(time.Millisecond).String(),
		})
	}
	return rows
}

func buildEntryRows(entries []journal.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			strconv.Itoa(entry.Index),
			entry.Status,
			entry.Path,
			entry.Method,
			formatBytes(entry.SizeBytes),
			entry.ErrorMessage,
		})
	}
	return rows
}

func runMode(run journal.Run) string {
	var parts []string
	if run.DryRun {
		parts = append(parts, "dry-run")
	}
	if run.Overwrite {
		parts = append(parts, "overwrite")
	}
	if len(parts) == 0 {
		return "move"
	}
	return strings.Join(parts, ",")
}

func displayPrefix(prefix string) string {
	if prefix == "" {
		return "(working directory)"
	}
	return prefix
}
