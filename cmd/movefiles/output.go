package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// clipboardWriter is replaced in tests; CI machines rarely have a clipboard.
var clipboardWriter = clipboard.WriteAll

// writeReport renders dto once and delivers it to every requested sink.
func writeReport(cmd *cobra.Command, flags *moveFlags, format string, dto reportDTO) error {
	file := strings.TrimSpace(flags.output)
	if !flags.stdout && file == "" && !flags.pasteboard {
		return nil
	}

	var buf bytes.Buffer
	if err := encodeReport(&buf, format, dto); err != nil {
		return err
	}

	if flags.stdout {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write report to stdout: %w", err)
		}
	}
	if file != "" {
		if err := os.WriteFile(file, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write report to %s: %w", file, err)
		}
	}
	if flags.pasteboard {
		if err := clipboardWriter(buf.String()); err != nil {
			return fmt.Errorf("copy report to clipboard: %w", err)
		}
	}
	return nil
}
