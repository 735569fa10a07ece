// Package cmdlog provides structured logging for svn client invocations.
// Logging is disabled unless SVNVIEW_LOG_FILE is set, so library consumers
// pay nothing by default.
package cmdlog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	logger     *log.Logger
	loggerOnce sync.Once
	logEnabled bool
)

// init auto-initializes the logger from environment variables.
// Set SVNVIEW_LOG_FILE to enable logging to a file.
// Set SVNVIEW_LOG_LEVEL to control verbosity (debug, info, warn, error).
func init() {
	logPath := os.Getenv("SVNVIEW_LOG_FILE")
	if logPath == "" {
		return // Logging disabled by default
	}

	level := log.InfoLevel
	switch strings.ToLower(os.Getenv("SVNVIEW_LOG_LEVEL")) {
	case "debug":
		level = log.DebugLevel
	case "warn", "warning":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	if err := Init(logPath, level); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize svn command logger: %v\n", err)
	}
}

// Init initializes the logger to write to the specified file.
// If logPath is empty, logging stays disabled.
func Init(logPath string, level log.Level) error {
	var initErr error
	loggerOnce.Do(func() {
		if logPath == "" {
			logEnabled = false
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			initErr = err
			return
		}

		logger = log.NewWithOptions(f, log.Options{
			Level:           level,
			Prefix:          "SVN",
			ReportTimestamp: true,
			ReportCaller:    false,
		})
		logEnabled = true
	})
	return initErr
}

// SetLogger allows injecting a custom logger (useful for testing).
func SetLogger(l *log.Logger) {
	logger = l
	logEnabled = l != nil
}

// Op creates a logging context for one client invocation.
// Returns a function that should be called when the invocation completes.
//
// Usage:
//
//	done := cmdlog.Op("status", "dir", dir)
//	defer func() { done(err) }()
func Op(op string, keyvals ...any) func(error) {
	if !logEnabled || logger == nil {
		return func(error) {}
	}

	start := time.Now()
	return func(err error) {
		duration := time.Since(start)

		args := make([]any, 0, len(keyvals)+4)
		args = append(args, "op", op)
		args = append(args, "duration", duration.String())
		args = append(args, keyvals...)

		if err != nil {
			args = append(args, "error", Truncate(err.Error(), 400))
			logger.Error("command failed", args...)
		} else {
			logger.Info("command complete", args...)
		}
	}
}

// Truncate shortens a string to maxLen characters for safe logging.
// Raw reports can run to megabytes; log lines should not.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
