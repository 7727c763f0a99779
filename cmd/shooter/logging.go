package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the application logger. With --log the output goes to
// that file for the whole run; otherwise it goes to stderr until the TUI
// takes over the terminal.
// The returned close function must be called on exit.
func newLogger() (*log.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogPath, err)
		}
		out = f
		closeFn = func() { f.Close() } //nolint:errcheck // Best-effort close on exit
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger, closeFn, nil
}

// quietForTUI stops stderr logging while the alternate screen is active.
// Writes to stderr would tear the frame.
func quietForTUI(logger *log.Logger) {
	if flagLogPath == "" {
		logger.SetOutput(io.Discard)
	}
}
