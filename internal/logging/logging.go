// Package logging sets up the zerolog logger used across themegen.
// Logging is only written when --debug is passed; the log goes to
// ~/.themegen/debug.log and is truncated on each launch.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// LogFileName is the name of the debug log file.
	LogFileName = "debug.log"
	// LogDirName is the name of the directory containing the log file.
	LogDirName = ".themegen"
)

var (
	mu      sync.Mutex
	logFile *os.File

	// getLogPath is a function variable to allow overriding in tests.
	getLogPath = defaultGetLogPath
)

// New builds a logger writing to w at the given level name.
// Unknown level names fall back to debug.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Init returns the application logger. With enable false it returns a
// no-op logger and touches no files.
func Init(enable bool, level string) (zerolog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if !enable {
		return zerolog.Nop(), nil
	}

	logPath, err := getLogPath()
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("determine log path: %w", err)
	}

	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return zerolog.Nop(), fmt.Errorf("create log directory: %w", err)
	}

	//nolint:gosec // G304: Log path is computed from user home, not user input
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("open log file: %w", err)
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f

	logger := New(f, level)
	logger.Info().Str("started", time.Now().Format(time.RFC3339)).Msg("themegen debug log started")
	return logger, nil
}

// Close closes the debug log file if open.
// Safe to call even if logging is disabled.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns the path to the debug log file.
func GetLogPath() (string, error) {
	return getLogPath()
}
