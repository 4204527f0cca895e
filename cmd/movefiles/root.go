package main

import (
	"github.com/spf13/cobra"
)

const processName = "movefiles"

func newRootCommand() *cobra.Command {
	var configFlag string
	flags := &moveFlags{}

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "movefiles",
		Short: "Move a list of files into a destination directory",
		Long: `movefiles takes a newline-separated list of files (like the output of
"ls -1") and moves each of them from a source prefix into a destination
directory. Every entry is attempted; failures are collected and reported
together once the batch is done.`,
		Example: `ls -1 ~/Downloads/*.pdf | xargs -n1 basename | movefiles -i -s ~/Downloads -d ~/Documents/pdf
movefiles -I list.txt -d /srv/archive --noop --table`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd, ctx, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config-file", "C", "", "Use the given config file instead of the default")

	f := rootCmd.Flags()
	f.BoolP("version", "V", false, "Print version information")
	f.BoolVarP(&flags.force, "force", "f", false, "Overwrite existing destination files")
	f.BoolVarP(&flags.noop, "noop", "n", false, "Show what would be done without moving anything")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug output to stderr")
	f.BoolVarP(&flags.stdin, "stdin", "i", false, "Read the file list from stdin")
	f.StringVarP(&flags.input, "input", "I", "", "Read the file list from this file")
	f.StringVarP(&flags.sourcePrefix, "source-prefix", "s", "", "Directory the listed files are relative to")
	f.StringVarP(&flags.destination, "destination-directory", "d", "", "Directory to move the listed files into")
	f.BoolVarP(&flags.stdout, "stdout", "o", false, "Write the report to stdout")
	f.StringVarP(&flags.output, "output", "O", "", "Write the report to this file")
	f.BoolVarP(&flags.pasteboard, "pasteboard", "p", false, "Copy the report to the clipboard")
	f.StringVar(&flags.format, "format", "", "Report format: text, json or yaml")
	f.BoolVar(&flags.table, "table", false, "Print a summary table to stdout")
	f.BoolVarP(&flags.printConfig, "config", "c", false, "Print configuration values and exit")
	f.BoolVar(&flags.noHistory, "no-history", false, "Do not record this run in the history")

	rootCmd.MarkFlagsMutuallyExclusive("stdin", "input")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))

	return rootCmd
}
