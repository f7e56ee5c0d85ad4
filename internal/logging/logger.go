// Package logging provides categorized file-based logging for mathdesk
// TUI sessions. The TUI owns the terminal, so diagnostics go to files
// under the user state directory, one file per category per day.
// Logging is controlled by debug_mode in the config; when false every
// logger is a silent no-op. The arithmetic library never logs.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category.
type Category string

const (
	CategorySession Category = "session" // session lifecycle, operation invocations
	CategoryMenu    Category = "menu"    // TUI state transitions
	CategoryConfig  Category = "config"  // config loading and hot reload
)

// Log levels.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Logger writes timestamped lines for one category. The zero Logger
// is a no-op.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	mu        sync.Mutex
	loggers   = make(map[Category]*Logger)
	logsDir   string
	debugMode bool
	logLevel  = LevelInfo
)

// DefaultDir returns the default log directory,
// ~/.local/state/mathdesk/logs.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", "mathdesk", "logs"), nil
}

// Initialize sets up the logging directory. With debug false this is a
// silent no-op and every Get returns a no-op logger.
func Initialize(dir string, debug bool, level string) error {
	mu.Lock()
	defer mu.Unlock()

	debugMode = debug
	logLevel = parseLevel(level)

	if !debugMode {
		return nil
	}
	if dir == "" {
		return fmt.Errorf("log directory required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	logsDir = dir
	return nil
}

func parseLevel(level string) int {
	switch level {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// IsDebugMode returns whether file logging is enabled.
func IsDebugMode() bool {
	mu.Lock()
	defer mu.Unlock()
	return debugMode
}

// Get returns (or creates) the logger for a category. Returns a no-op
// logger when debug mode is disabled or the file cannot be opened.
func Get(category Category) *Logger {
	mu.Lock()
	defer mu.Unlock()

	if !debugMode || logsDir == "" {
		return &Logger{category: category}
	}
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date-prefixed files keep rotation as simple as deleting old days.
	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] could not open %s: %v\n", logPath, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

// Close closes all open log files.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	for cat, l := range loggers {
		if l.file != nil {
			_ = l.file.Close()
		}
		delete(loggers, cat)
	}
	logsDir = ""
	debugMode = false
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelDebug {
		return
	}
	l.logger.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelInfo {
		return
	}
	l.logger.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelWarn {
		return
	}
	l.logger.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs an error.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}
