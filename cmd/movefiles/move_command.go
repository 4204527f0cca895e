package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"movefiles/internal/config"
	"movefiles/internal/journal"
	"movefiles/internal/lines"
	"movefiles/internal/logging"
	"movefiles/internal/mover"
)

type moveFlags struct {
	force        bool
	noop         bool
	verbose      bool
	stdin        bool
	input        string
	sourcePrefix string
	destination  string
	stdout       bool
	output       string
	pasteboard   bool
	format       string
	table        bool
	printConfig  bool
	noHistory    bool
}

// settings returns a copy of cfg with explicitly set flags applied.
func (f *moveFlags) settings(cmd *cobra.Command, cfg *config.Config) *config.Config {
	out := *cfg
	changed := cmd.Flags().Changed
	if changed("force") {
		out.Move.Overwrite = f.force
	}
	if changed("noop") {
		out.Move.DryRun = f.noop
	}
	if changed("source-prefix") {
		out.Paths.SourcePrefix = f.sourcePrefix
	}
	if changed("destination-directory") {
		out.Paths.DestinationDir = f.destination
	}
	if changed("format") {
		out.Output.Format = strings.ToLower(strings.TrimSpace(f.format))
	}
	if f.verbose {
		out.Logging.Level = "debug"
	}
	if f.noHistory {
		out.History.Enabled = false
	}
	return &out
}

func runMove(cmd *cobra.Command, ctx *commandContext, flags *moveFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	settings := flags.settings(cmd, cfg)
	if err := settings.Validate(); err != nil {
		return &configError{Err: err}
	}

	if flags.printConfig {
		return printConfig(cmd.OutOrStdout(), ctx, settings)
	}

	paths, err := readInput(cmd, flags)
	if err != nil {
		return err
	}

	if err := settings.EnsureDirectories(); err != nil {
		return &configError{Err: err}
	}

	runID := uuid.NewString()
	logger, err := logging.NewFromConfig(settings, runID, cmd.ErrOrStderr())
	if err != nil {
		return &configError{Err: err}
	}
	logger = logging.WithProcess(logger, processName)

	if settings.Move.Lock {
		lock, err := acquireBatchLock(settings.LockPath())
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logging.WarnWithContext(logger, "failed to release batch lock", "lock_release_failed",
					logging.String("lock", settings.LockPath()),
					logging.Error(err),
					logging.String(logging.FieldImpact, "stale lock file remains until the next run"),
				)
			}
		}()
	}

	opts := mover.WithOverwrite(settings.Move.Overwrite).WithDryRun(settings.Move.DryRun)
	started := time.Now()
	report, moveErr := mover.New(logger, mover.WithVerifiedCopies(settings.Move.VerifyCopy)).
		MoveAll(paths, settings.Paths.SourcePrefix, settings.Paths.DestinationDir, opts)
	finished := time.Now()

	if settings.History.Enabled {
		recordHistory(cmd.Context(), logger, settings, newJournalRun(runID, len(paths), started, finished, settings, report, moveErr))
	}
	logging.CleanupOldLogs(logger, settings.Logging.RetentionDays, finished, logging.RunLogTarget(settings.Paths.LogDir, ""))

	dto := newReportDTO(runID, len(paths), report)
	if err := writeReport(cmd, flags, settings.Output.Format, dto); err != nil {
		return err
	}
	if flags.table {
		fmt.Fprintln(cmd.OutOrStdout(), renderSummaryTable(report))
	}

	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(errOut, renderBatchStatus(dto, moveErr, shouldColorize(errOut)))

	if moveErr != nil {
		logging.ErrorWithContext(logger, "batch finished with errors", "batch_failed",
			logging.String("kind", mover.KindOf(moveErr).String()),
			logging.Int("exit_code", exitCode(moveErr)),
			logging.Error(moveErr),
		)
		return moveErr
	}
	logger.Info("batch finished",
		logging.Int("moved", dto.Moved),
		logging.Int("planned", dto.Planned),
		logging.Duration("elapsed", finished.Sub(started)),
	)
	return nil
}

func readInput(cmd *cobra.Command, flags *moveFlags) ([]string, error) {
	var (
		source string
		r      io.Reader
	)
	switch {
	case flags.stdin:
		source = "stdin"
		r = cmd.InOrStdin()
	case strings.TrimSpace(flags.input) != "":
		source = flags.input
		file, err := os.Open(flags.input)
		if err != nil {
			return nil, &inputReadError{Source: source, Err: err}
		}
		defer file.Close()
		r = file
	default:
		return nil, errNoInput
	}

	paths, err := lines.Read(r)
	if err != nil {
		if errors.Is(err, lines.ErrInvalidInput) {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		return nil, &inputReadError{Source: source, Err: err}
	}
	return paths, nil
}

func acquireBatchLock(path string) (*flock.Flock, error) {
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire batch lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another movefiles batch is running (lock %s)", path)
	}
	return lock, nil
}

func newJournalRun(runID string, total int, started, finished time.Time, settings *config.Config, report mover.Report, moveErr error) journal.Run {
	moved, planned, failed := report.Counts()
	run := journal.Run{
		ID:             runID,
		StartedAt:      started,
		FinishedAt:     finished,
		SourcePrefix:   settings.Paths.SourcePrefix,
		DestinationDir: settings.Paths.DestinationDir,
		Overwrite:      settings.Move.Overwrite,
		DryRun:         settings.Move.DryRun,
		Total:          total,
		Moved:          moved,
		Planned:        planned,
		Failed:         failed,
	}
	if mover.KindOf(moveErr) == mover.KindInvalidArgument {
		run.ErrorMessage = moveErr.Error()
	}
	for _, entry := range report.Entries {
		record := journal.Entry{
			Index:       entry.Index,
			Path:        entry.Path,
			Source:      entry.Source,
			Destination: entry.Destination,
			Status:      string(entry.Status),
			Method:      entry.Method,
			SizeBytes:   entry.Size,
		}
		if entry.Err != nil {
			record.ErrorMessage = entry.Err.Error()
		}
		run.Entries = append(run.Entries, record)
	}
	return run
}

// recordHistory stores run; a journal failure never fails the batch.
func recordHistory(ctx context.Context, logger *slog.Logger, settings *config.Config, run journal.Run) {
	store, err := journal.Open(settings.HistoryPath())
	if err == nil {
		defer store.Close()
		err = store.RecordRun(ctx, run)
	}
	if err != nil {
		logging.WarnWithContext(logger, "failed to record run history", "history_record_failed",
			logging.String("history", settings.HistoryPath()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check state_dir permissions or delete a stale history.db"),
			logging.String(logging.FieldImpact, "this run is missing from movefiles history"),
		)
		return
	}
	logger.Debug("run recorded", logging.String("history", settings.HistoryPath()))
}
