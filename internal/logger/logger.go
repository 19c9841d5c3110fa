// Package logger provides verbose logging for the gridpad CLI. When
// verbose mode is enabled via the --verbose flag or settings, debug
// messages are written to stderr so users can follow the widget's
// load/save interactions with the host.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	base    = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		base.SetLevel(log.DebugLevel)
	} else {
		base.SetLevel(log.WarnLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr.
// Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base.SetOutput(w)
}

// Debug logs a message at debug level.
func Debug(format string, args ...any) {
	base.Debugf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	base.Infof(format, args...)
}

// Warn logs a warning message. Warnings are emitted regardless of
// verbose mode.
func Warn(format string, args ...any) {
	base.Warnf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	base.Errorf(format, args...)
}
