// Package logging routes reel's diagnostics to a log file. The terminal is
// owned by the UI, so nothing is written to stdout or stderr once the program
// is running.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It discards output until Setup is called.
var L = clog.New(io.Discard)

// Options configure Setup.
type Options struct {
	Path  string
	Debug bool
}

// Setup points L at the file in opts.Path, creating parent directories. When
// the file cannot be opened logging stays disabled and the error is returned
// so the caller can decide whether to mention it.
func Setup(opts Options) (io.Closer, error) {
	level := clog.InfoLevel
	if opts.Debug {
		level = clog.DebugLevel
	}

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		L = newLogger(io.Discard, level)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		L = newLogger(io.Discard, level)
		return nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		L = newLogger(io.Discard, level)
		return nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	L = newLogger(file, level)
	return file, nil
}

func newLogger(w io.Writer, level clog.Level) *clog.Logger {
	return clog.NewWithOptions(w, clog.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "reel",
	})
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
