// Package diag provides the logging and fail-fast assertion collaborators
// shared by the DFA builder, both emitters, and the command-line front-end
// (the document parser reports errors only through its return values). All diagnostics pass through a single Logger
// so every stage's output goes to the same log file and, for reports and
// warnings, standard output as well.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
)

// Logger fans diagnostics out to a log file and, depending on severity, to
// standard output as well. It is bracketed by Start and Stop, mirroring the
// start_logging/stop_logging lifecycle of the original compiler.
type Logger struct {
	file *os.File
	path string
}

// Start opens the log file at path (creating/truncating it) and configures
// the default gologger writer to also include it, returning the Logger so
// the caller can Stop it when the compilation finishes.
func Start(path string) (*Logger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", path, err)
	}

	gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	gologger.DefaultLogger.SetFormatter(formatter.NewCLI(false))
	gologger.DefaultLogger.SetWriter(&teeWriter{file: f})

	return &Logger{file: f, path: path}, nil
}

// Stop flushes and closes the underlying log file. Safe to call on a nil
// Logger (no-op), matching a compilation that never reached Start.
func (l *Logger) Stop() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// teeWriter implements gologger's Writer interface, always appending to the
// log file and, for everything except debug-level chatter, echoing to
// standard output as well.
type teeWriter struct {
	file io.Writer
}

func (w *teeWriter) Write(data []byte, level levels.Level) error {
	if _, err := w.file.Write(data); err != nil {
		return err
	}
	if _, err := w.file.Write([]byte("\n")); err != nil {
		return err
	}
	if level != levels.LevelDebug {
		os.Stdout.Write(data)
		os.Stdout.Write([]byte("\n"))
	}
	return nil
}

// Report logs an informational line, the Go analogue of original_source's
// say(): always written to the log and echoed to stdout.
func Report(format string, args ...any) {
	gologger.Info().Msgf(format, args...)
}

// Warn logs a recoverable condition; the compilation continues.
func Warn(format string, args ...any) {
	gologger.Warning().Msgf(format, args...)
}

// Fatal logs the given message and terminates the process with a non-zero
// exit code. Used for conditions spec.md classifies as Syntax, Semantic,
// Capacity, or Internal errors once they propagate past the point where a
// caller could otherwise return an error.
func Fatal(format string, args ...any) {
	gologger.Fatal().Msgf(format, args...)
}

// Assert aborts the process via Fatal when cond is false. It is the direct
// analogue of the ASSERT_* macro family in the original compiler's
// debug.h: a violated invariant is never recoverable, so there is no
// error return to check.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		Fatal(format, args...)
	}
}
