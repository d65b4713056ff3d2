package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger represents a file logger for conversion activities. Lines are
// appended to a date-stamped file; a new file is opened when the day
// rolls over, which keeps individual files bounded.
type Logger struct {
	name    string
	logDir  string
	logDate string
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
}

// LogLevel represents different types of log entries
type LogLevel string

const (
	LogLevelInfo    LogLevel = "INFO"
	LogLevelWarning LogLevel = "WARN"
	LogLevelError   LogLevel = "ERROR"
	LogLevelCycle   LogLevel = "CYCLE"
)

// NewLogger creates a new file logger writing under logDir. Output is
// mirrored to stderr.
func NewLogger(logDir, name string) (*Logger, error) {
	if logDir == "" {
		logDir = "logs"
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{
		name:   name,
		logDir: logDir,
	}
	if err := l.openFile(time.Now()); err != nil {
		return nil, err
	}

	l.writeSessionHeader()
	return l, nil
}

// openFile opens the log file for the given day. Caller holds the lock
// except during construction.
func (l *Logger) openFile(now time.Time) error {
	date := now.Format("2006-01-02")
	logPath := filepath.Join(l.logDir, fmt.Sprintf("%s_%s.log", l.name, date))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if l.logFile != nil {
		l.logFile.Close()
	}
	l.logFile = file
	l.logDate = date
	l.logger = log.New(io.MultiWriter(file, os.Stderr), "", 0)
	return nil
}

// rotateIfNeeded switches to a new file when the date has changed.
func (l *Logger) rotateIfNeeded(now time.Time) {
	if now.Format("2006-01-02") == l.logDate {
		return
	}
	if err := l.openFile(now); err != nil {
		// Keep writing to the old file rather than losing lines.
		l.logger.Printf("[%s] [ERROR] log rotation failed: %v", now.Format("2006-01-02 15:04:05"), err)
	}
}

// writeSessionHeader writes a session start header to the log
func (l *Logger) writeSessionHeader() {
	l.mu.Lock()
	defer l.mu.Unlock()

	header := fmt.Sprintf(`
================================================================================
🚀 DUST CONVERTER SESSION STARTED
================================================================================
Started: %s
Log File: %s_%s.log
================================================================================
`, time.Now().Format("2006-01-02 15:04:05"), l.name, l.logDate)

	l.logger.Print(header)
}

// Log writes a formatted log entry with the specified level
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.rotateIfNeeded(now)

	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] [%s] %s", now.Format("2006-01-02 15:04:05"), level, message)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LogLevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(LogLevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LogLevelError, format, args...)
}

// Cycle logs a scheduled-cycle lifecycle message
func (l *Logger) Cycle(format string, args ...interface{}) {
	l.Log(LogLevelCycle, format, args...)
}

// LogError logs error with context
func (l *Logger) LogError(context string, err error) {
	l.Error("%s: %v", context, err)
}

// Close closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		footer := fmt.Sprintf(`
================================================================================
🛑 DUST CONVERTER SESSION ENDED
================================================================================
Ended: %s
================================================================================

`, time.Now().Format("2006-01-02 15:04:05"))
		l.logger.Print(footer)

		return l.logFile.Close()
	}
	return nil
}

// GetLogPath returns the current log file path
func (l *Logger) GetLogPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return filepath.Join(l.logDir, fmt.Sprintf("%s_%s.log", l.name, l.logDate))
}
